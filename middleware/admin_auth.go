package middleware

import (
	"net/http"
	"strings"
	"time"

	"cruise-backend/config"
	"cruise-backend/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin guards the operator endpoints with the opaque token
// issued at login, passed in the X-Admin-Token header.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader("X-Admin-Token"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing admin token"})
			return
		}

		var admin models.Admin
		now := time.Now().UTC()
		err := config.DB.
			Where("token = ? AND (token_expires IS NULL OR token_expires > ?)", token, now).
			First(&admin).Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired admin token"})
			return
		}

		c.Set("adminId", admin.ID)
		c.Next()
	}
}
