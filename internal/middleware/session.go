package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/response"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

// IdentityResolver looks up the account for tokens that only carry a subject.
type IdentityResolver interface {
	Resolve(ctx context.Context, sess *session.Session, subject string) (*models.User, error)
}

// Authenticate verifies the marketplace bearer token and attaches a
// session to both the gin context and the request context. The token is
// kept verbatim so upstream calls can forward it.
func Authenticate(secret string, resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, appErrors.ErrUnauthorized)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abort(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			return
		}
		token := strings.TrimSpace(parts[1])

		claims, err := parseToken(token, secret)
		if err != nil {
			abort(c, err)
			return
		}

		email := claims.Email
		if email == "" {
			email = claims.Subject
		}
		var expiresAt time.Time
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}

		sess := session.New()
		sess.Init(token, claims.UserID, email, session.Role(claims.Role), expiresAt)
		if claims.UserID == "" || !session.Role(claims.Role).Valid() {
			if resolver == nil {
				abort(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims"))
				return
			}
			user, err := resolver.Resolve(c.Request.Context(), sess, email)
			if err != nil {
				abort(c, err)
				return
			}
			if email == "" {
				email = user.Email
			}
			sess.Init(token, user.ID, email, session.Role(user.Role), expiresAt)
		}

		c.Set(session.ContextKey, sess)
		c.Request = c.Request.WithContext(session.WithContext(c.Request.Context(), sess))
		c.Next()
	}
}

// SessionFrom returns the session attached by Authenticate.
func SessionFrom(c *gin.Context) *session.Session {
	value, exists := c.Get(session.ContextKey)
	if !exists {
		return nil
	}
	sess, _ := value.(*session.Session)
	return sess
}

func parseToken(raw, secret string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	return claims, nil
}

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}
