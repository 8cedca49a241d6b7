package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "CORS_ALLOW_ORIGINS", "LLM_PROVIDER", "OPENAI_API_KEY", "MODEL_URL", "MODEL_NAME", "MODEL_TIMEOUT_SECONDS",
		"LINT_COMMAND", "LINT_ARGS", "LINT_FILE_SUFFIX", "LINT_MAX_ISSUES",
		"CONSOLE_PORT", "CONSOLE_BACKEND_URL", "REVIEW_CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
	// Keep .env files in the working directory out of the picture.
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Port != "8000" {
		t.Fatalf("expected port 8000, got %q", cfg.Port)
	}
	if cfg.ModelURL != defaultModelURL || cfg.ModelName != "codellama" {
		t.Fatalf("unexpected model settings: %q %q", cfg.ModelURL, cfg.ModelName)
	}
	if cfg.LLMProvider != "ollama" {
		t.Fatalf("expected ollama provider, got %q", cfg.LLMProvider)
	}
	if cfg.ModelTimeout != 120*time.Second {
		t.Fatalf("expected 120s timeout, got %s", cfg.ModelTimeout)
	}
	if cfg.LintCommand != "pylint" {
		t.Fatalf("expected pylint, got %q", cfg.LintCommand)
	}
	if want := []string{"-rn", "--score", "n"}; !reflect.DeepEqual(cfg.LintArgs, want) {
		t.Fatalf("expected lint args %v, got %v", want, cfg.LintArgs)
	}
	if cfg.LintMaxIssues != 5 {
		t.Fatalf("expected 5 max issues, got %d", cfg.LintMaxIssues)
	}
	if want := []string{"*"}; !reflect.DeepEqual(cfg.CORSAllowOrigin, want) {
		t.Fatalf("expected wildcard CORS, got %v", cfg.CORSAllowOrigin)
	}
	if cfg.ConsoleBackendURL != "http://localhost:8000/review" {
		t.Fatalf("unexpected console backend url %q", cfg.ConsoleBackendURL)
	}
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "review.yaml")
	body := []byte(`port: "9000"
model:
  name: deepseek-coder
  timeout_seconds: 30
lint:
  command: flake8
  max_issues: 3
`)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("REVIEW_CONFIG_FILE", path)
	t.Setenv("MODEL_NAME", "codellama:13b")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Fatalf("expected file port 9000, got %q", cfg.Port)
	}
	if cfg.ModelName != "codellama:13b" {
		t.Fatalf("expected env to override model name, got %q", cfg.ModelName)
	}
	if cfg.ModelTimeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %s", cfg.ModelTimeout)
	}
	if cfg.LintCommand != "flake8" || cfg.LintMaxIssues != 3 {
		t.Fatalf("unexpected lint settings: %q %d", cfg.LintCommand, cfg.LintMaxIssues)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODEL_TIMEOUT_SECONDS", "soon")
	t.Setenv("LINT_MAX_ISSUES", "-2")

	cfg := Load()

	if cfg.ModelTimeout != defaultModelTimeout {
		t.Fatalf("expected default timeout, got %s", cfg.ModelTimeout)
	}
	if cfg.LintMaxIssues != defaultLintMax {
		t.Fatalf("expected default max issues, got %d", cfg.LintMaxIssues)
	}
}

func TestParseEnvLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantKey string
		wantVal string
		wantOK  bool
	}{
		{name: "plain", line: "MODEL_NAME=codellama", wantKey: "MODEL_NAME", wantVal: "codellama", wantOK: true},
		{name: "quoted", line: `MODEL_URL="http://localhost:11434/api/generate"`, wantKey: "MODEL_URL", wantVal: "http://localhost:11434/api/generate", wantOK: true},
		{name: "export", line: "export PORT=9000", wantKey: "PORT", wantVal: "9000", wantOK: true},
		{name: "comment", line: "# PORT=1", wantOK: false},
		{name: "no separator", line: "PORT", wantOK: false},
		{name: "blank", line: "   ", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			key, val, ok := parseEnvLine(tt.line)
			if ok != tt.wantOK || key != tt.wantKey || val != tt.wantVal {
				t.Fatalf("parseEnvLine(%q) = %q, %q, %v", tt.line, key, val, ok)
			}
		})
	}
}

func TestLoadOpenAIProviderLeavesURLEmpty(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := Load()

	if cfg.LLMProvider != "openai" {
		t.Fatalf("expected openai provider, got %q", cfg.LLMProvider)
	}
	if cfg.ModelURL != "" {
		t.Fatalf("expected empty model url, got %q", cfg.ModelURL)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("expected api key to be loaded")
	}
}
