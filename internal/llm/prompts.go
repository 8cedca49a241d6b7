package llm

import (
	_ "embed"
	"strings"
)

//go:embed prompts/review.txt
var reviewInstructions string

// ReviewInstructions returns the fixed instruction prefix describing the
// review categories and the expected JSON shape.
func ReviewInstructions() string {
	return reviewInstructions
}

// BuildReviewPrompt concatenates the instruction prefix and the submitted code.
func BuildReviewPrompt(code string) string {
	var b strings.Builder
	b.Grow(len(reviewInstructions) + len(code) + 16)
	b.WriteString(reviewInstructions)
	b.WriteString("\n\nCode:\n")
	b.WriteString(code)
	return b.String()
}
