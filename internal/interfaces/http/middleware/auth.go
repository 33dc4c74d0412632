// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// AuthMiddleware creates JWT authentication middleware
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errorMessage": "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errorMessage": "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errorMessage": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// Store shopper identity in context
		c.Set("member_id", claims.MemberID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// GetMemberIDFromContext extracts the authenticated member id from gin context
func GetMemberIDFromContext(c *gin.Context) (uint, bool) {
	memberID, exists := c.Get("member_id")
	if !exists {
		return 0, false
	}
	return memberID.(uint), true
}
