package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-renderer/internal/shared/telemetry"
)

const (
	formatKey = "format"
	bytesKey  = "documentBytes"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if format := c.GetString(formatKey); format != "" {
			fields["format"] = format
		}
		if size, ok := c.Get(bytesKey); ok {
			fields["bytes"] = size
		}
		telemetry.Info("request.complete", fields)
	}
}

// SetDocument records the rendered format and size for the request log line.
func SetDocument(c *gin.Context, format string, size int) {
	c.Set(formatKey, format)
	c.Set(bytesKey, size)
}
