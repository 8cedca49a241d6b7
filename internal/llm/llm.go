// Package llm defines the text-generation contract used by the review
// orchestrator and the prompt sent to the model.
package llm

import (
	"context"
	"errors"
)

// Client sends a single prompt to a text-generation model and returns its
// reply. Implementations do not stream.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("llm: provider not configured")

// PlaceholderClient stands in when no model provider is configured.
type PlaceholderClient struct{}

// Generate returns ErrNotImplemented.
func (PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotImplemented
}
