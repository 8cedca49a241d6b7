// Package ollama implements llm.Client against the Ollama /api/generate endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"

	"codereview-backend/internal/llm"
)

const (
	DefaultURL     = "http://localhost:11434/api/generate"
	DefaultModel   = "codellama"
	DefaultTimeout = 120 * time.Second

	maxErrorBody = 512
)

var safeModelName = regexp.MustCompile(`^[a-zA-Z0-9:._/-]+$`)

// Client implements llm.Client using a non-streaming generate call.
type Client struct {
	url        string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// NewClient constructs an Ollama client. Empty values fall back to the local
// defaults; a non-positive timeout uses DefaultTimeout.
func NewClient(url, model string, requestTimeout time.Duration) (*Client, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		url = DefaultURL
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}
	if !safeModelName.MatchString(model) {
		return nil, fmt.Errorf("ollama: invalid model name %q", model)
	}
	if requestTimeout <= 0 {
		requestTimeout = DefaultTimeout
	}
	return &Client{
		url:        url,
		model:      model,
		timeout:    requestTimeout,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// Generate sends prompt to the model and returns the trimmed reply text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	guard := timeout.New[string](timeout.Config{DefaultTimeout: c.timeout})
	return guard.Execute(ctx, c.timeout, func(ctx context.Context) (string, error) {
		return c.generateOnce(ctx, payload)
	})
}

func (c *Client) generateOnce(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("ollama: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("ollama: request timeout after %s: %w", c.timeout, err)
		}
		return "", fmt.Errorf("ollama: send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ollama: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("ollama: http status %d: %s", resp.StatusCode, truncate(strings.TrimSpace(string(body)), maxErrorBody))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("ollama: parse response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("ollama: %s", parsed.Error)
	}
	return strings.TrimSpace(parsed.Response), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

var _ llm.Client = (*Client)(nil)
