package console

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"codereview-backend/internal/reviews"
)

// LintIssue is one lint diagnostic line as shown to the user.
type LintIssue string

type legacyLintIssue struct {
	Line    json.RawMessage `json:"line"`
	Type    string          `json:"type"`
	Message string          `json:"message"`
}

// UnmarshalJSON accepts the plain text form and the older structured form
// {line, type, message}, which is flattened to "Line <n> — <type>: <message>".
func (l *LintIssue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var legacy legacyLintIssue
		if err := json.Unmarshal(data, &legacy); err != nil {
			return err
		}
		*l = LintIssue(formatLegacy(legacy))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("lint issue: %w", err)
	}
	*l = LintIssue(s)
	return nil
}

func formatLegacy(issue legacyLintIssue) string {
	line := strings.Trim(string(issue.Line), `"`)
	if line == "" || line == "null" {
		line = reviews.UnknownLinePlaceholder
	}
	return fmt.Sprintf("Line %s — %s: %s", line, issue.Type, issue.Message)
}

// Result is a review result as received from the backend.
type Result struct {
	LintIssues []LintIssue       `json:"lint_issues"`
	AIFeedback []reviews.Finding `json:"ai_feedback"`
}
