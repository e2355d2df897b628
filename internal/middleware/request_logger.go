package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"rentwheels/pkg/logger"
)

// RequestLoggerMiddleware logs one structured entry per completed request.
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if requestID := c.GetString("request_id"); requestID != "" {
			fields["request_id"] = requestID
		}

		log.WithFields(fields).Info("request completed")
	}
}
