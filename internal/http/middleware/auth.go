package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authUserKey = "auth_user_id"

// AuthOptional parses a Bearer token when one is sent and exposes the
// authenticated user id to handlers. Requests without a token pass
// through untouched; booking identifies users by the id in the payload.
func AuthOptional(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if id, ok := claims["user_id"].(float64); ok {
				c.Set(authUserKey, int64(id))
			}
		}
		c.Next()
	}
}

// AuthUserID returns the authenticated user id, or 0 when anonymous.
func AuthUserID(c *gin.Context) int64 {
	if v, ok := c.Get(authUserKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
