package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

const clientIPKey = "client_ip"

// Proxy headers consulted in order before falling back to RemoteAddr.
var clientIPHeaders = []string{
	"X-Forwarded-For", // may hold a list, first entry is the client
	"X-Real-Ip",
	"CF-Connecting-IP",
	"X-Forwarded",
}

// AuditMiddleware extracts and stores IP address for audit logging
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(clientIPKey, getClientIP(c))
		c.Next()
	}
}

func getClientIP(c *gin.Context) string {
	for _, header := range clientIPHeaders {
		v := c.GetHeader(header)
		if v == "" {
			continue
		}
		ip := strings.TrimSpace(strings.Split(v, ",")[0])
		if isValidIP(ip) {
			return ip
		}
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}

func isValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

// GetIPFromContext retrieves IP address from gin context
func GetIPFromContext(c *gin.Context) string {
	if ip, exists := c.Get(clientIPKey); exists {
		if ipStr, ok := ip.(string); ok {
			return ipStr
		}
	}
	return getClientIP(c)
}
