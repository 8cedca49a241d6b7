package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration shared by the orchestrator and the console.
type Config struct {
	Port              string
	Env               string
	CORSAllowOrigin   []string
	LLMProvider       string
	ModelURL          string
	ModelName         string
	ModelTimeout      time.Duration
	OpenAIAPIKey      string
	LintCommand       string
	LintArgs          []string
	LintFileSuffix    string
	LintMaxIssues     int
	ConsolePort       string
	ConsoleBackendURL string
}

const (
	defaultProvider     = "ollama"
	defaultModelURL     = "http://localhost:11434/api/generate"
	defaultModelName    = "codellama"
	defaultModelTimeout = 120 * time.Second
	defaultLintMax      = 5
)

// Load reads configuration from environment variables with sensible defaults.
// An optional YAML file named by REVIEW_CONFIG_FILE supplies defaults that the
// environment still overrides.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	file := fileConfig{}
	if path := strings.TrimSpace(os.Getenv("REVIEW_CONFIG_FILE")); path != "" {
		loaded, err := loadFile(path)
		if err != nil {
			log.Printf("config: ignoring %s: %v", path, err)
		} else {
			file = loaded
		}
	}

	cfg := Config{
		Port:              getEnv("PORT", or(file.Port, "8000")),
		Env:               normalizeEnv(getEnv("ENV", or(file.Env, "dev"))),
		CORSAllowOrigin:   splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", or(strings.Join(file.CORSAllowOrigins, ","), "*")), ","),
		LLMProvider:       strings.ToLower(getEnv("LLM_PROVIDER", or(file.Model.Provider, defaultProvider))),
		ModelURL:          getEnv("MODEL_URL", file.Model.URL),
		ModelName:         getEnv("MODEL_NAME", or(file.Model.Name, defaultModelName)),
		ModelTimeout:      getSeconds("MODEL_TIMEOUT_SECONDS", file.Model.TimeoutSeconds, defaultModelTimeout),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		LintCommand:       getEnv("LINT_COMMAND", or(file.Lint.Command, "pylint")),
		LintArgs:          strings.Fields(getEnv("LINT_ARGS", or(file.Lint.Args, "-rn --score n"))),
		LintFileSuffix:    getEnv("LINT_FILE_SUFFIX", or(file.Lint.FileSuffix, ".py")),
		LintMaxIssues:     getInt("LINT_MAX_ISSUES", file.Lint.MaxIssues, defaultLintMax),
		ConsolePort:       getEnv("CONSOLE_PORT", or(file.Console.Port, "8501")),
		ConsoleBackendURL: getEnv("CONSOLE_BACKEND_URL", or(file.Console.BackendURL, "http://localhost:8000/review")),
	}
	// An empty URL lets non-default providers pick their own endpoint.
	if cfg.ModelURL == "" && cfg.LLMProvider == defaultProvider {
		cfg.ModelURL = defaultModelURL
	}
	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, fileVal, def int) int {
	if fileVal > 0 {
		def = fileVal
	}
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		log.Printf("config: invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return parsed
}

func getSeconds(key string, fileVal int, def time.Duration) time.Duration {
	if fileVal > 0 {
		def = time.Duration(fileVal) * time.Second
	}
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		log.Printf("config: invalid %s=%q, using %s", key, raw, def)
		return def
	}
	return time.Duration(parsed) * time.Second
}

func or(val, def string) string {
	if strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func splitAndTrim(raw, sep string) []string {
	parts := strings.Split(raw, sep)
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
