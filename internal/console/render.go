package console

import (
	"fmt"
	"io"
	"strings"
)

const (
	// NoLintIssues replaces an empty lint section.
	NoLintIssues = "No linting issues detected"
	// NoAIFeedback replaces an empty AI section.
	NoAIFeedback = "No AI feedback generated"

	lintHeading = "Lint & Static Analysis"
	aiHeading   = "AI Suggestions"
)

// FindingView is one AI finding ready for display.
type FindingView struct {
	IssueType    string
	Line         string
	Description  string
	SuggestedFix string
}

// View is the display model shared by every renderer.
type View struct {
	Warning    string
	Error      string
	HasResult  bool
	LintIssues []string
	LintEmpty  string
	Findings   []FindingView
	AIEmpty    string
}

// Render turns an Outcome into a View. Text is copied verbatim.
func Render(o Outcome) View {
	v := View{Warning: o.Warning, Error: o.Error}
	if o.Result == nil {
		return v
	}
	v.HasResult = true
	for _, issue := range o.Result.LintIssues {
		v.LintIssues = append(v.LintIssues, string(issue))
	}
	if len(v.LintIssues) == 0 {
		v.LintEmpty = NoLintIssues
	}
	for _, f := range o.Result.AIFeedback {
		v.Findings = append(v.Findings, FindingView{
			IssueType:    f.IssueType,
			Line:         f.LineNumber.String(),
			Description:  f.Description,
			SuggestedFix: f.SuggestedFix,
		})
	}
	if len(v.Findings) == 0 {
		v.AIEmpty = NoAIFeedback
	}
	return v
}

// WriteText writes the view as plain text.
func WriteText(w io.Writer, v View) error {
	var b strings.Builder
	if v.Warning != "" {
		fmt.Fprintf(&b, "warning: %s\n", v.Warning)
	}
	if v.Error != "" {
		fmt.Fprintf(&b, "error: %s\n", v.Error)
	}
	if v.HasResult {
		fmt.Fprintf(&b, "%s\n", lintHeading)
		if v.LintEmpty != "" {
			fmt.Fprintf(&b, "  %s\n", v.LintEmpty)
		}
		for _, issue := range v.LintIssues {
			fmt.Fprintf(&b, "  - %s\n", issue)
		}
		fmt.Fprintf(&b, "\n%s\n", aiHeading)
		if v.AIEmpty != "" {
			fmt.Fprintf(&b, "  %s\n", v.AIEmpty)
		}
		for i, f := range v.Findings {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "  Issue Type: %s\n", f.IssueType)
			fmt.Fprintf(&b, "  Line: %s\n", f.Line)
			fmt.Fprintf(&b, "  Description: %s\n", f.Description)
			fmt.Fprintf(&b, "  Suggested Fix:\n%s\n", indent(f.SuggestedFix, "    "))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
