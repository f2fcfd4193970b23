package middleware

import (
	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/shared/response"
)

// AdminMiddleware checks if user has admin role (set by AuthMiddleware)
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextKeyRole) != "admin" {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
