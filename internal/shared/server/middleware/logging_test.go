package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"codereview-backend/internal/shared/telemetry"
)

func TestLoggingIncludesReviewFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	telemetry.SetOutput(&buf)
	defer telemetry.SetOutput(nil)

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.POST("/review", func(c *gin.Context) {
		c.Set(ReviewIDKey, "review-1")
		c.Set(LintIssueCountKey, 2)
		c.Set(AIFindingCountKey, 1)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/review", nil)
	req.Header.Set("X-Request-Id", "req-123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := lines[len(lines)-1]
	var payload map[string]any
	if err := json.Unmarshal([]byte(last), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}

	required := []string{"request_id", "method", "path", "status", "duration_ms", "review_id", "lint_issue_count", "ai_finding_count"}
	for _, key := range required {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["request_id"] != "req-123" {
		t.Fatalf("unexpected request_id: %v", payload["request_id"])
	}
	if payload["review_id"] != "review-1" {
		t.Fatalf("unexpected review_id: %v", payload["review_id"])
	}
	if payload["lint_issue_count"] != float64(2) {
		t.Fatalf("unexpected lint_issue_count: %v", payload["lint_issue_count"])
	}
}

func TestLoggingOmitsReviewFieldsForOtherRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	telemetry.SetOutput(&buf)
	defer telemetry.SetOutput(nil)

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}
	if _, ok := payload["review_id"]; ok {
		t.Fatalf("did not expect review_id on health log")
	}
	if payload["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected status: %v", payload["status"])
	}
}
