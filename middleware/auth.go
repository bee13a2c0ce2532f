package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/sharath018/venue-booking-backend/config"
)

// AuthMiddleware verifies the HS256 bearer token and sets up access context.
// With no secret configured every request passes unauthenticated.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	secret := []byte(cfg.JWTAccessSecret)

	return func(c *gin.Context) {
		if len(secret) == 0 {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			zerolog.Ctx(c.Request.Context()).Debug().Err(err).Msg("token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		accessContext, err := accessContextFromClaims(claims)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(accessContextKey, accessContext)
		c.Set("user_id", accessContext.UserID)
		c.Set("claims", claims)

		c.Next()
	}
}

func accessContextFromClaims(claims jwt.MapClaims) (AccessContext, error) {
	idFloat, ok := claims["id"].(float64)
	if !ok || idFloat <= 0 {
		return AccessContext{}, fmt.Errorf("id missing in token")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return AccessContext{}, fmt.Errorf("role missing in token")
	}
	username, _ := claims["username"].(string)

	return AccessContext{
		UserID:   uint(idFloat),
		Username: username,
		RoleName: strings.ToUpper(role),
	}, nil
}
