package middleware

import (
	"github.com/gin-gonic/gin"
)

// Role constants to avoid string typos
const (
	RoleRoot    = "ROOT"
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
)

// ReportRoles returns the configured report roles, or root, admin and
// manager when none are configured.
func ReportRoles(configured []string) []string {
	if len(configured) == 0 {
		return []string{RoleRoot, RoleAdmin, RoleManager}
	}
	return configured
}

const accessContextKey = "access_context"

// AccessContext is the authenticated caller as read from the token.
type AccessContext struct {
	UserID   uint
	Username string
	RoleName string
}

// GetAccessContext returns the caller set by AuthMiddleware.
func GetAccessContext(c *gin.Context) (AccessContext, bool) {
	v, exists := c.Get(accessContextKey)
	if !exists {
		return AccessContext{}, false
	}
	ac, ok := v.(AccessContext)
	return ac, ok
}

// GetUserIDFromContext returns nil for anonymous requests.
func GetUserIDFromContext(c *gin.Context) *uint {
	ac, ok := GetAccessContext(c)
	if !ok || ac.UserID == 0 {
		return nil
	}
	id := ac.UserID
	return &id
}
