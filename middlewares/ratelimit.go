package middlewares

import (
	"net/http"

	"archetypeagent/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimitMiddleware rejects clients that exceed the submission limit. If
// the limiter itself fails the request is let through.
func RateLimitMiddleware(limiter session.Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many submissions, please wait a moment"})
			c.Abort()
			return
		}
		c.Next()
	}
}
