package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-page/internal/shared/telemetry"
)

// PageStateKey is set by handlers that run a page view.
const PageStateKey = "pageState"

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
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
		if state := c.GetString(PageStateKey); state != "" {
			fields["page_state"] = state
		}
		telemetry.Info("request.complete", fields)
	}
}
