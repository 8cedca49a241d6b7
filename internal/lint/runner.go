package lint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"codereview-backend/internal/shared/util"
)

// ExecFunc runs name with args and returns its standard output.
type ExecFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Runner invokes a command-line linter (pylint by default) against a
// temporary copy of the submitted code.
type Runner struct {
	Command    string
	Args       []string
	FileSuffix string
	MaxIssues  int
	TempDir    string
	Exec       ExecFunc
}

// NewRunner constructs a Runner with pylint-compatible defaults for empty fields.
// An unusable suffix falls back to .py.
func NewRunner(command string, args []string, suffix string, maxIssues int) *Runner {
	if strings.TrimSpace(command) == "" {
		command = "pylint"
	}
	if args == nil {
		args = []string{"-rn", "--score", "n"}
	}
	if clean, err := util.SanitizeFileSuffix(suffix); err == nil {
		suffix = clean
	} else {
		suffix = ".py"
	}
	if maxIssues <= 0 {
		maxIssues = DefaultMaxIssues
	}
	return &Runner{
		Command:    command,
		Args:       args,
		FileSuffix: suffix,
		MaxIssues:  maxIssues,
		Exec:       runCommand,
	}
}

// Lint writes code to a temp file, runs the tool on it and returns the
// selected diagnostic lines. The temp file is removed before returning.
func (r *Runner) Lint(ctx context.Context, code string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(r.TempDir, "review-*"+r.FileSuffix)
	if err != nil {
		return nil, fmt.Errorf("lint: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.WriteString(code); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("lint: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("lint: close temp file: %w", err)
	}

	execFn := r.Exec
	if execFn == nil {
		execFn = runCommand
	}
	args := append([]string{tmpPath}, r.Args...)
	out, err := execFn(ctx, r.Command, args...)
	if err != nil {
		return nil, fmt.Errorf("lint: run %s: %w", r.Command, err)
	}
	return SelectIssues(string(out), r.MaxIssues), nil
}

// Available reports whether the configured lint command resolves on PATH.
func (r *Runner) Available() bool {
	_, err := exec.LookPath(r.Command)
	return err == nil
}

// runCommand executes the tool and returns stdout. Linters such as pylint
// signal findings through a non-zero exit status, so an exit error is only
// fatal when the tool printed nothing.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	cmd := exec.CommandContext(ctx, path, args...) // #nosec G204
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(out) > 0 {
			return out, nil
		}
		return nil, err
	}
	return out, nil
}
