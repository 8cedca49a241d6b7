// Package openai implements llm.Client against OpenAI-compatible chat
// completion endpoints (OpenAI, LM Studio, vLLM).
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"

	"codereview-backend/internal/llm"
)

const (
	DefaultURL     = "https://api.openai.com/v1/chat/completions"
	DefaultTimeout = 120 * time.Second
)

// Client implements llm.Client using Chat Completions.
type Client struct {
	url        string
	apiKey     string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient constructs a chat completions client. The API key is required
// only for the hosted OpenAI endpoint.
func NewClient(url, apiKey, model string, requestTimeout time.Duration) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("MODEL_NAME is required for the openai provider")
	}
	url = strings.TrimSpace(url)
	if url == "" {
		url = DefaultURL
	}
	if strings.Contains(url, "api.openai.com") && strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if requestTimeout <= 0 {
		requestTimeout = DefaultTimeout
	}
	return &Client{
		url:        url,
		apiKey:     apiKey,
		model:      model,
		timeout:    requestTimeout,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float32      `json:"temperature,omitempty"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// Generate sends prompt as a single user message and returns the reply text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	temp := float32(0)
	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: &temp,
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	guard := timeout.New[string](timeout.Config{DefaultTimeout: c.timeout})
	return guard.Execute(ctx, c.timeout, func(ctx context.Context) (string, error) {
		return c.complete(ctx, payload)
	})
}

func (c *Client) complete(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("openai request timeout: %w", err)
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return "", fmt.Errorf("openai http status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("openai response parse: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("openai error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("openai http status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai response missing choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

var _ llm.Client = (*Client)(nil)
