package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"codereview-backend/internal/console"
	"codereview-backend/internal/shared/config"
	"codereview-backend/internal/shared/server"
	"codereview-backend/internal/shared/server/middleware"
)

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "console",
		Short:        "AI code review console",
		Long:         "Console serves the review page in a browser or runs a single review from the terminal.",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(cfg), newReviewCmd(cfg, console.New(nil)))
	return root
}

func newServeCmd(cfg config.Config) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the review console web page",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Env == "production" {
				gin.SetMode(gin.ReleaseMode)
			}
			r := gin.New()
			r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery())
			console.NewHandler(console.New(nil), cfg.ConsoleBackendURL).RegisterRoutes(r)

			addr := server.Addr(port)
			log.Printf("Starting review console on %s (backend %s)", addr, cfg.ConsoleBackendURL)
			return r.Run(addr)
		},
	}
	cmd.Flags().StringVar(&port, "port", cfg.ConsolePort, "Listen port")
	return cmd
}

// errNotice marks a review that ended with a warning or error notice.
var errNotice = errors.New("review did not produce a result")

func newReviewCmd(cfg config.Config, c *console.Console) *cobra.Command {
	var (
		file       string
		mode       string
		backendURL string
		plain      bool
	)
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review a file (or stdin) and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := console.ParseMode(mode)
			if err != nil {
				return err
			}
			code, err := readSource(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			if m != console.Stub && console.Validate(code) == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), console.PendingNotice)
			}
			outcome := c.Run(cmd.Context(), console.Submission{Code: code, Mode: m, BackendURL: backendURL})
			view := console.Render(outcome)

			out := cmd.OutOrStdout()
			if plain {
				if err := console.WriteText(out, view); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, console.RenderTerminal(view))
			}
			if outcome.Result == nil {
				return errNotice
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "Source file to review (- for stdin)")
	cmd.Flags().StringVarP(&mode, "mode", "m", console.Live.Slug(), "Mode: demo, live or stub")
	cmd.Flags().StringVar(&backendURL, "backend-url", cfg.ConsoleBackendURL, "Review backend URL")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain text output without styling")
	return cmd
}

func readSource(stdin io.Reader, path string) (string, error) {
	if strings.TrimSpace(path) == "" || path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(raw), nil
}
