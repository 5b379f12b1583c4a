package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"profile-backend/internal/shared/metrics"
	"profile-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request and records the request counter.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		// Label by route template where one matched to keep cardinality bounded.
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		metrics.IncHTTPRequest(c.Request.Method, route, status)

		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
