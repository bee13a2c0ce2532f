package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RBACMiddleware checks if the user has one of the allowed roles. It is a
// no-op when no access context was set, i.e. auth is disabled.
func RBACMiddleware(authEnabled bool, allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[strings.ToUpper(strings.TrimSpace(role))] = struct{}{}
	}

	return func(c *gin.Context) {
		if !authEnabled {
			c.Next()
			return
		}

		ac, ok := GetAccessContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		if _, ok := allowed[ac.RoleName]; ok {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "unauthorized"})
	}
}
