package middleware

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

// RequireRoles lets the request through only when the session role is one of roles.
func RequireRoles(roles ...session.Role) gin.HandlerFunc {
	allowed := make(map[session.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil || sess.UserID() == "" {
			abort(c, appErrors.ErrUnauthorized)
			return
		}
		if _, ok := allowed[sess.Role()]; !ok {
			abort(c, appErrors.ErrForbidden)
			return
		}
		c.Next()
	}
}
