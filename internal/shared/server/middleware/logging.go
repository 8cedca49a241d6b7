package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"codereview-backend/internal/shared/telemetry"
)

// Context keys handlers may set to enrich the request log line.
const (
	ReviewIDKey       = "reviewId"
	LintIssueCountKey = "lintIssueCount"
	AIFindingCountKey = "aiFindingCount"
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
		if reviewID := c.GetString(ReviewIDKey); reviewID != "" {
			fields["review_id"] = reviewID
			fields["lint_issue_count"] = c.GetInt(LintIssueCountKey)
			fields["ai_finding_count"] = c.GetInt(AIFindingCountKey)
		}
		telemetry.Info("request.complete", fields)
	}
}
