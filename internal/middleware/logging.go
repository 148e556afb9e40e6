package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kaslele/internal/logger"
)

const requestIDKey = "requestID"

// RequestID returns the request id set by RequestLogging, or "" when the
// middleware is not installed.
func RequestID(c *gin.Context) string {
	id, _ := c.Value(requestIDKey).(string)
	return id
}

// RequestLogging returns a Gin middleware that tags every request with a
// unique id and logs it with method, path, status, latency and client IP.
// Health probes are skipped so they do not drown out the entries the
// operator actually cares about.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.New().String()
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		if c.FullPath() == "/api/health" {
			return
		}

		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if raw := c.Request.URL.RawQuery; raw != "" {
			fields = append(fields, "query", raw)
		}
		logger.Get().Infow("request", fields...)
	}
}
