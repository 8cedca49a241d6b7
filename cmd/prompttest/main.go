package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"codereview-backend/internal/bootstrap"
	"codereview-backend/internal/llm"
	"codereview-backend/internal/reviews"
	"codereview-backend/internal/shared/config"
)

// prompttest sends the review prompt for one source file to the configured
// model and prints the parsed findings. No lint pass runs.
func main() {
	cfg := config.Load()

	filePath := flag.String("file", "", "Path to the source file to review")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider (ollama, openai)")
	model := flag.String("model", cfg.ModelName, "Model name")
	modelURL := flag.String("url", cfg.ModelURL, "Model endpoint URL")
	timeoutSeconds := flag.Int("timeout", int(cfg.ModelTimeout/time.Second), "Model timeout in seconds")
	showRaw := flag.Bool("raw", false, "Print the raw model reply before the parsed findings")
	outPath := flag.String("out", "", "Path to write the parsed findings JSON (optional)")
	flag.Parse()

	if strings.TrimSpace(*filePath) == "" {
		exitErr("file path is required")
	}
	code, err := os.ReadFile(*filePath)
	if err != nil {
		exitErr(fmt.Sprintf("read file: %v", err))
	}

	cfg.LLMProvider = strings.ToLower(strings.TrimSpace(*provider))
	cfg.ModelName = *model
	cfg.ModelURL = *modelURL
	cfg.ModelTimeout = time.Duration(*timeoutSeconds) * time.Second

	client, err := bootstrap.BuildLLM(cfg)
	if err != nil {
		exitErr(err.Error())
	}

	reply, err := client.Generate(context.Background(), llm.BuildReviewPrompt(string(code)))
	if err != nil {
		exitErr(fmt.Sprintf("llm generate: %v", err))
	}
	if *showRaw {
		_, _ = fmt.Fprintln(os.Stderr, reply)
	}

	findings, ok := reviews.ParseFindings(reply)
	if !ok {
		_, _ = fmt.Fprintln(os.Stderr, "warning: reply is not a findings list; wrapped as a general finding")
	}

	pretty, err := prettyJSON(findings)
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	if _, err := os.Stdout.Write(pretty); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
}

func prettyJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
