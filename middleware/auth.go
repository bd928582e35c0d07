package middleware

import (
	"errors"
	"net/http"

	"sportsstore-service/common/auth"

	"github.com/gin-gonic/gin"
)

const (
	UserContextKey = "userID"
	RoleContextKey = "userRole"
	AdminRole      = "admin"
)

// AuthMiddleware resolves the caller's identity. With trustGateway set, the
// X-User-ID/X-User-Role headers (or user_id/user_role cookies) injected by the
// gateway are accepted; otherwise a Bearer JWT signed with secret is required.
func AuthMiddleware(secret []byte, trustGateway bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID, role string

		if trustGateway {
			userID = c.GetHeader("X-User-ID")
			role = c.GetHeader("X-User-Role")
			if userID == "" {
				if v, err := c.Cookie("user_id"); err == nil && v != "" {
					userID = v
				}
				if v, err := c.Cookie("user_role"); err == nil && v != "" {
					role = v
				}
			}
		}

		if userID == "" {
			token := auth.BearerToken(c.GetHeader("Authorization"))
			if token == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Missing credentials"})
				return
			}
			claims, err := auth.ParseAndValidateToken(token, secret, "")
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
				return
			}
			userID, role = claims.UserID, claims.Role
		}

		c.Set(UserContextKey, userID)
		c.Set(RoleContextKey, role)
		c.Next()
	}
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleContextKey) != AdminRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: admin role required"})
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, error) {
	val, exists := c.Get(UserContextKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	userID, ok := val.(string)
	if !ok || userID == "" {
		return "", errors.New("user ID has invalid type in context")
	}
	return userID, nil
}
