// Package reviews orchestrates a code review: a lint pass, a model pass, and
// the merge of both into one result.
package reviews

import (
	"context"
	"time"

	"github.com/google/uuid"

	"codereview-backend/internal/lint"
	"codereview-backend/internal/llm"
	"codereview-backend/internal/shared/metrics"
	"codereview-backend/internal/shared/telemetry"
	"codereview-backend/internal/shared/util"
)

// ModelErrorPrefix starts the description of the finding that replaces a
// failed model call.
const ModelErrorPrefix = "Error contacting LLM: "

// Service contains the review orchestration.
type Service struct {
	Linter lint.Linter
	LLM    llm.Client
	Model  string
	NewID  func() string
}

// NewService constructs a review service.
func NewService(linter lint.Linter, client llm.Client, model string) *Service {
	return &Service{Linter: linter, LLM: client, Model: model}
}

// Review runs both passes over code. It never fails: a lint failure yields no
// lint issues, and a model failure or unparseable reply yields a single
// general finding.
func (s *Service) Review(ctx context.Context, code string) Result {
	start := time.Now()
	result := Result{
		ID:         s.newID(),
		LintIssues: s.lintIssues(ctx, code),
	}
	result.AIFeedback = s.aiFeedback(ctx, result.ID, code)

	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.IncReviews()
	metrics.AddFindings(len(result.LintIssues), len(result.AIFeedback))
	metrics.ObserveReviewDurationMs(durationMs)
	telemetry.Info("review.complete", map[string]any{
		"review_id":        result.ID,
		"model":            s.Model,
		"code_bytes":       len(code),
		"code_digest":      util.Digest(code),
		"lint_issue_count": len(result.LintIssues),
		"ai_finding_count": len(result.AIFeedback),
		"duration_ms":      durationMs,
	})
	return result
}

func (s *Service) lintIssues(ctx context.Context, code string) []string {
	if s.Linter == nil {
		return []string{}
	}
	issues, err := s.Linter.Lint(ctx, code)
	if err != nil {
		metrics.IncLintFailures()
		telemetry.Warn("review.lint_failed", map[string]any{"error": err})
		return []string{}
	}
	if issues == nil {
		return []string{}
	}
	return issues
}

func (s *Service) aiFeedback(ctx context.Context, reviewID, code string) []Finding {
	client := s.LLM
	if client == nil {
		client = llm.PlaceholderClient{}
	}

	raw, err := client.Generate(ctx, llm.BuildReviewPrompt(code))
	if err != nil {
		metrics.IncModelFailures()
		telemetry.Warn("review.model_failed", map[string]any{
			"review_id": reviewID,
			"model":     s.Model,
			"error":     err,
		})
		return []Finding{GeneralFinding(ModelErrorPrefix + err.Error())}
	}

	findings, ok := ParseFindings(raw)
	if !ok {
		metrics.IncModelParseFallbacks()
		telemetry.Info("review.model_unstructured", map[string]any{
			"review_id":      reviewID,
			"response_bytes": len(raw),
		})
	}
	return findings
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}
