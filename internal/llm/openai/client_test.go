package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGenerateSendsSingleUserMessage(t *testing.T) {
	var got chatRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" [] "}}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "sk-test", "qwen2.5-coder", time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	text, err := client.Generate(context.Background(), "review this")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "[]" {
		t.Fatalf("expected trimmed content, got %q", text)
	}
	if auth != "Bearer sk-test" {
		t.Fatalf("unexpected auth header %q", auth)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" || got.Messages[0].Content != "review this" {
		t.Fatalf("unexpected messages: %+v", got.Messages)
	}
	if got.Stream {
		t.Fatalf("expected non-streaming request")
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "api error", status: http.StatusUnauthorized, body: `{"error":{"message":"bad key","type":"invalid_request_error"}}`, wantErr: "bad key"},
		{name: "status only", status: http.StatusBadGateway, body: "upstream", wantErr: "status 502"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantErr: "missing choices"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, _ := NewClient(srv.URL, "", "local-model", time.Second)
			_, err := client.Generate(context.Background(), "x")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "", "", time.Second); err == nil {
		t.Fatalf("expected model required error")
	}
	if _, err := NewClient("", "", "gpt-4o-mini", time.Second); err == nil {
		t.Fatalf("expected api key required for hosted endpoint")
	}
	if _, err := NewClient("http://localhost:1234/v1/chat/completions", "", "local", 0); err != nil {
		t.Fatalf("expected local endpoint without key to be accepted: %v", err)
	}
}
