package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims represents the payload of marketplace access tokens. The
// marketplace only guarantees the subject (the user's email); user id and
// role are present on tokens minted with the extended claim set.
type JWTClaims struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// User is the marketplace account returned by auth/me.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	Phone      string `json:"phone,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
}
