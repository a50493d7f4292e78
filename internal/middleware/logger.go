package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"baikuk-backoffice-api/internal/logger"
)

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		entry := map[string]interface{}{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         c.ClientIP(),
			"latency":    latency.String(),
			"user-agent": c.Request.UserAgent(),
		}

		if len(c.Errors) > 0 {
			logger.Request.WithFields(entry).Error(c.Errors.String())
		} else {
			logger.Request.WithFields(entry).Info("request completed")
		}
	}
}
