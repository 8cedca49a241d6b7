package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	fixStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// RenderTerminal formats the view with ANSI styling for an interactive shell.
func RenderTerminal(v View) string {
	var blocks []string
	if v.Warning != "" {
		blocks = append(blocks, warnStyle.Render(v.Warning))
	}
	if v.Error != "" {
		blocks = append(blocks, errStyle.Render(v.Error))
	}
	if !v.HasResult {
		return strings.Join(blocks, "\n")
	}

	blocks = append(blocks, headerStyle.Render(lintHeading))
	if v.LintEmpty != "" {
		blocks = append(blocks, okStyle.Render(v.LintEmpty))
	}
	for _, issue := range v.LintIssues {
		blocks = append(blocks, "• "+issue)
	}

	blocks = append(blocks, "", headerStyle.Render(aiHeading))
	if v.AIEmpty != "" {
		blocks = append(blocks, okStyle.Render(v.AIEmpty))
	}
	for _, f := range v.Findings {
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left,
			labelStyle.Render("Issue Type: ")+f.IssueType,
			labelStyle.Render("Line: ")+f.Line,
			labelStyle.Render("Description: ")+f.Description,
			labelStyle.Render("Suggested Fix:"),
			fixStyle.Render(f.SuggestedFix),
		))
	}
	return strings.Join(blocks, "\n")
}
