package middleware

import (
	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/shared/utils"
)

const ContextKeyClientIP = "client_ip"

// ClientIPMiddleware extracts the client IP address once per request so the
// rate limiter and request logger agree on it.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyClientIP, utils.ExtractClientIP(c))
		c.Next()
	}
}

// ClientIP returns the IP set by ClientIPMiddleware, falling back to extraction
func ClientIP(c *gin.Context) string {
	if ip := c.GetString(ContextKeyClientIP); ip != "" {
		return ip
	}
	return utils.ExtractClientIP(c)
}
