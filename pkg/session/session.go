// Package session holds the authenticated caller's credentials for the
// lifetime of a request or dashboard login. The upstream client reads the
// bearer token from here instead of from ambient storage.
package session

import (
	"context"
	"sync"
	"time"
)

// Role mirrors the marketplace user roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTutor   Role = "tutor"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the marketplace roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTutor, RoleStudent:
		return true
	}
	return false
}

// ContextKey is the gin context key storing the request session.
const ContextKey = "session"

type ctxKey struct{}

// Session is safe for concurrent use by the fan-out readers of one request.
type Session struct {
	mu        sync.RWMutex
	token     string
	userID    string
	email     string
	role      Role
	expiresAt time.Time
}

// New returns an empty, unauthenticated session.
func New() *Session {
	return &Session{}
}

// Init stores credentials after a successful login or token verification.
func (s *Session) Init(token, userID, email string, role Role, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = userID
	s.email = email
	s.role = role
	s.expiresAt = expiresAt
}

// Clear drops all credentials (logout).
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = ""
	s.email = ""
	s.role = ""
	s.expiresAt = time.Time{}
}

// Token returns the bearer token and whether one is set.
func (s *Session) Token() (string, bool) {
	if s == nil {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// UserID returns the authenticated user id.
func (s *Session) UserID() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Email returns the authenticated user email.
func (s *Session) Email() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// Role returns the authenticated user role.
func (s *Session) Role() Role {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// Active reports whether the session holds a token that has not expired at now.
// A zero expiry never expires.
func (s *Session) Active(now time.Time) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return false
	}
	return s.expiresAt.IsZero() || now.Before(s.expiresAt)
}

// WithContext attaches the session to ctx.
func WithContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the session attached by WithContext.
func FromContext(ctx context.Context) *Session {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}
