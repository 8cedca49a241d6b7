package console

import "codereview-backend/internal/reviews"

// DemoResult is the canned result shown in Demo mode.
func DemoResult() Result {
	return Result{
		LintIssues: []LintIssue{
			"Line 2 — style: Function name should be lowercase (PEP8).",
			"Line 3 — logic: Function does not return any value.",
		},
		AIFeedback: []reviews.Finding{
			{
				IssueType:    "optimization",
				Description:  "Consider using list comprehension for better readability.",
				LineNumber:   reviews.Line(5),
				SuggestedFix: "Replace the for loop with a list comprehension.",
			},
		},
	}
}
