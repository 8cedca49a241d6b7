package lint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

func TestSelectIssues(t *testing.T) {
	output := strings.Join([]string{
		"************* Module review",
		"  /tmp/review.py:1:0: C0114: Missing module docstring (missing-module-docstring)  ",
		"/tmp/review.py:3:4: E0602: Undefined variable 'x' (undefined-variable) error",
		"/tmp/review.py:5:0: W0611: Unused import os (unused-import) warning",
		"an error without a colon",
		"",
	}, "\n")

	got := SelectIssues(output, 5)
	want := []string{
		"/tmp/review.py:3:4: E0602: Undefined variable 'x' (undefined-variable) error",
		"/tmp/review.py:5:0: W0611: Unused import os (unused-import) warning",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SelectIssues = %#v, want %#v", got, want)
	}
}

func TestSelectIssuesNoMatchesIsEmptyNotNil(t *testing.T) {
	got := SelectIssues("all good\nnothing: to see here\n", 5)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestRunnerKeepsFirstFiveOfSeven(t *testing.T) {
	var lines []string
	for i := 1; i <= 7; i++ {
		lines = append(lines, fmt.Sprintf("f.py:%d:0: E%04d: syntax-error", i, i))
	}
	runner := NewRunner("pylint", nil, ".py", 5)
	runner.TempDir = t.TempDir()
	runner.Exec = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte(strings.Join(lines, "\n")), nil
	}

	got, err := runner.Lint(context.Background(), "print('hi')\n")
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	if !reflect.DeepEqual(got, lines[:5]) {
		t.Fatalf("expected first five lines, got %#v", got)
	}
}

func TestRunnerWritesAndRemovesTempFile(t *testing.T) {
	dir := t.TempDir()
	code := "def f():\n    return 1\n"
	var seenPath string
	var seenArgs []string

	runner := NewRunner("pylint", nil, ".py", 5)
	runner.TempDir = dir
	runner.Exec = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		if name != "pylint" {
			t.Fatalf("unexpected command %q", name)
		}
		seenPath = args[0]
		seenArgs = args[1:]
		raw, err := os.ReadFile(seenPath)
		if err != nil {
			t.Fatalf("temp file missing during lint: %v", err)
		}
		if string(raw) != code {
			t.Fatalf("temp file content = %q", raw)
		}
		return nil, nil
	}

	if _, err := runner.Lint(context.Background(), code); err != nil {
		t.Fatalf("Lint: %v", err)
	}
	if !strings.HasSuffix(seenPath, ".py") {
		t.Fatalf("expected .py temp file, got %q", seenPath)
	}
	if want := []string{"-rn", "--score", "n"}; !reflect.DeepEqual(seenArgs, want) {
		t.Fatalf("expected args %v, got %v", want, seenArgs)
	}
	if _, err := os.Stat(seenPath); !os.IsNotExist(err) {
		t.Fatalf("expected temp file removed, stat err = %v", err)
	}
}

func TestRunnerRemovesTempFileOnToolFailure(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner("pylint", nil, ".py", 5)
	runner.TempDir = dir
	runner.Exec = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return nil, errors.New("segfault")
	}

	if _, err := runner.Lint(context.Background(), "x = 1"); err == nil {
		t.Fatalf("expected error from failing tool")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected temp dir empty, found %d entries", len(entries))
	}
}

func TestRunnerMissingTool(t *testing.T) {
	runner := NewRunner("definitely-not-a-linter-binary", nil, ".py", 5)
	runner.TempDir = t.TempDir()

	_, err := runner.Lint(context.Background(), "x = 1")
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
	if runner.Available() {
		t.Fatalf("expected tool to be unavailable")
	}
}

func TestRunnerToleratesNonZeroExitWithOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture requires a POSIX shell")
	}
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-lint")
	body := "#!/bin/sh\necho \"$1:1:0: E0001: syntax error (syntax-error)\"\necho \"$1:2:0: C0103: naming\"\nexit 2\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}

	runner := NewRunner(script, []string{}, ".py", 5)
	runner.TempDir = t.TempDir()

	got, err := runner.Lint(context.Background(), "def (:\n")
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	if len(got) != 1 || !strings.Contains(got[0], "syntax error") {
		t.Fatalf("unexpected issues: %#v", got)
	}
}
