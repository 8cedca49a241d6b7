// Package console is the interactive front end for requesting reviews. It
// runs in one of three modes and renders the outcome as HTML, plain text or
// styled terminal output.
package console

import (
	"context"
	"errors"
	"strings"

	"codereview-backend/internal/shared/telemetry"
)

const (
	// EmptyCodeWarning is shown when nothing but whitespace was submitted.
	EmptyCodeWarning = "Please paste some code first."
	// LiveErrorPrefix starts the notice shown when the backend call fails.
	LiveErrorPrefix = "Error connecting to local backend: "
	// StubNotice is shown in Stub mode.
	StubNotice = "Remote API mode not yet implemented."
	// PendingNotice is shown while a review is in progress.
	PendingNotice = "Reviewing code... please wait."
)

// ErrEmptyCode reports a whitespace-only submission.
var ErrEmptyCode = errors.New("console: empty code")

// Submission is one review request from the user.
type Submission struct {
	Code       string
	Mode       Mode
	BackendURL string
}

// Outcome is what the user sees after a submission. At most one of Result,
// Warning and Error is set.
type Outcome struct {
	Result  *Result
	Warning string
	Error   string
}

// Console dispatches submissions by mode.
type Console struct {
	Live LiveReviewer
}

// New constructs a Console. A nil reviewer uses NewHTTPReviewer.
func New(live LiveReviewer) *Console {
	if live == nil {
		live = NewHTTPReviewer()
	}
	return &Console{Live: live}
}

// Validate returns ErrEmptyCode for whitespace-only code.
func Validate(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrEmptyCode
	}
	return nil
}

// Run handles one submission. Failures become notices on the Outcome rather
// than errors.
func (c *Console) Run(ctx context.Context, sub Submission) Outcome {
	if err := Validate(sub.Code); err != nil {
		return Outcome{Warning: EmptyCodeWarning}
	}

	switch sub.Mode {
	case Demo:
		result := DemoResult()
		return Outcome{Result: &result}
	case Live:
		result, err := c.Live.Review(ctx, sub.BackendURL, sub.Code)
		if err != nil {
			telemetry.Warn("console.live_failed", map[string]any{
				"backend_url": sub.BackendURL,
				"error":       err,
			})
			return Outcome{Error: LiveErrorPrefix + err.Error()}
		}
		return Outcome{Result: &result}
	case Stub:
		return Outcome{Error: StubNotice}
	default:
		return Outcome{Error: "unknown mode " + sub.Mode.String()}
	}
}
