package reviews

// ReviewResponse is the outward-facing representation of a review.
type ReviewResponse struct {
	LintIssues []string  `json:"lint_issues"`
	AIFeedback []Finding `json:"ai_feedback"`
}

func toResponse(r Result) ReviewResponse {
	resp := ReviewResponse{LintIssues: r.LintIssues, AIFeedback: r.AIFeedback}
	if resp.LintIssues == nil {
		resp.LintIssues = []string{}
	}
	if resp.AIFeedback == nil {
		resp.AIFeedback = []Finding{}
	}
	return resp
}
