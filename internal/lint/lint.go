// Package lint runs an external static-analysis tool over submitted source
// and extracts its diagnostic lines.
package lint

import (
	"context"
	"errors"
	"strings"
)

// DefaultMaxIssues caps how many diagnostic lines a review reports.
const DefaultMaxIssues = 5

// ErrToolNotFound is returned when the configured lint binary cannot be located.
var ErrToolNotFound = errors.New("lint tool not found")

// Linter produces diagnostic lines for a piece of source code.
type Linter interface {
	Lint(ctx context.Context, code string) ([]string, error)
}

// SelectIssues keeps trimmed lines that contain a colon and mention either
// "error" or "warning", stopping after max lines. A non-positive max keeps all.
func SelectIssues(output string, max int) []string {
	issues := []string{}
	for _, line := range strings.Split(output, "\n") {
		if max > 0 && len(issues) >= max {
			break
		}
		if !strings.Contains(line, ":") {
			continue
		}
		if !strings.Contains(line, "error") && !strings.Contains(line, "warning") {
			continue
		}
		issues = append(issues, strings.TrimSpace(line))
	}
	return issues
}
