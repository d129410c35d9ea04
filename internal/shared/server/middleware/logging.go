package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"cgi-wizard/internal/shared/metrics"
	"cgi-wizard/internal/shared/telemetry"
)

// StepKey is the context key handlers use to report the rendered step.
const StepKey = "wizardStep"

// Logging emits a structured log per request and records its duration.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		durationMs := float64(latency.Microseconds()) / 1000.0
		metrics.ObserveRequestDurationMs(durationMs)

		step, _ := c.Get(StepKey)
		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"query":       c.Request.URL.RawQuery,
			"status":      c.Writer.Status(),
			"duration_ms": durationMs,
			"step":        step,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
