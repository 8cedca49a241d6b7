package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"codereview-backend/internal/lint"
	"codereview-backend/internal/llm"
	"codereview-backend/internal/llm/ollama"
	"codereview-backend/internal/llm/openai"
	"codereview-backend/internal/reviews"
	"codereview-backend/internal/services/health"
	"codereview-backend/internal/shared/config"
	"codereview-backend/internal/shared/server"
	"codereview-backend/internal/shared/telemetry"
)

// App holds shared dependencies of the review orchestrator.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Linter        *lint.Runner
	LLM           llm.Client
	ReviewService *reviews.Service
	ReviewHandler *reviews.Handler
	Health        *health.Service
}

// Build wires the lint runner, the model client and the review service into
// a router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	linter := lint.NewRunner(cfg.LintCommand, cfg.LintArgs, cfg.LintFileSuffix, cfg.LintMaxIssues)

	client, err := BuildLLM(cfg)
	if err != nil {
		return nil, err
	}

	model := modelName(client, cfg.ModelName)
	svc := reviews.NewService(linter, client, model)
	app := &App{
		Config:        cfg,
		Linter:        linter,
		LLM:           client,
		ReviewService: svc,
		ReviewHandler: reviews.NewHandler(svc),
		Health:        health.NewService(linter, model),
	}

	if !linter.Available() {
		telemetry.Warn("bootstrap.lint_tool_missing", map[string]any{
			"command": linter.Command,
		})
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		ReviewHandler: app.ReviewHandler,
		Health:        app.Health,
	})

	return app, nil
}

// BuildLLM returns the model client selected by cfg.LLMProvider.
func BuildLLM(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "", "ollama":
		return ollama.NewClient(cfg.ModelURL, cfg.ModelName, cfg.ModelTimeout)
	case "openai":
		return openai.NewClient(cfg.ModelURL, cfg.OpenAIAPIKey, cfg.ModelName, cfg.ModelTimeout)
	case "none":
		return llm.PlaceholderClient{}, nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

// modelName prefers the client's resolved model, which includes its default
// when none was configured.
func modelName(client llm.Client, configured string) string {
	if named, ok := client.(interface{ Model() string }); ok {
		return named.Model()
	}
	return configured
}
