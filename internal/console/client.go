package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const maxErrorBody = 512

// LiveReviewer sends code to a review backend.
type LiveReviewer interface {
	Review(ctx context.Context, backendURL, code string) (Result, error)
}

// HTTPReviewer posts the code as a form field to the backend.
type HTTPReviewer struct {
	HTTP *http.Client
}

// NewHTTPReviewer returns a reviewer without a client-side timeout; the call
// is bounded only by ctx.
func NewHTTPReviewer() *HTTPReviewer {
	return &HTTPReviewer{HTTP: &http.Client{}}
}

// Review posts code to backendURL and decodes the review result.
func (r *HTTPReviewer) Review(ctx context.Context, backendURL, code string) (Result, error) {
	form := url.Values{"code": {code}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, backendURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	client := r.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Result{}, fmt.Errorf("backend returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}
