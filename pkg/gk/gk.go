// Package gk wraps the GitKraken CLI. Every invocation returns a structured
// Result: a missing binary, a non-zero exit, and a timeout are all data, so
// callers can render or serialize outcomes without unwinding errors.
package gk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds a single gk invocation. AI subcommands can be slow,
// but they must not hang the caller indefinitely.
const DefaultTimeout = 30 * time.Second

// ErrNotInstalled reports that no gk binary could be located.
var ErrNotInstalled = errors.New("gk CLI not found: install it from https://gitkraken.dev/cli or place it on PATH")

// Result is the structured outcome of one gk invocation.
type Result struct {
	Success    bool   `json:"success"`
	ReturnCode int    `json:"return_code"`
	Stdout     string `json:"stdout"`
	Stderr     string `json:"stderr"`
	Command    string `json:"command"`
	Error      string `json:"error,omitempty"`
}

// Runner executes gk subcommands with a bounded timeout.
type Runner struct {
	binary  string
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Runner created with NewRunner.
type Option func(*Runner)

// WithBinary pins the gk binary path, skipping discovery.
func WithBinary(path string) Option {
	return func(r *Runner) { r.binary = path }
}

// WithTimeout overrides the per-invocation timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Runner) { r.timeout = timeout }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// NewRunner creates a Runner. Binary discovery is deferred to the first Run,
// so constructing a Runner on a machine without gk is not an error.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Locate finds the gk binary: PATH first, then the usual install locations.
func Locate() (string, error) {
	if path, err := exec.LookPath("gk"); err == nil {
		return path, nil
	}

	candidates := []string{
		"/usr/local/bin/gk",
		"/opt/homebrew/bin/gk",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, "bin", "gk"),
			filepath.Join(home, ".local", "bin", "gk"),
		)
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", ErrNotInstalled
}

// Installed reports whether a gk binary can be located.
func Installed() bool {
	_, err := Locate()
	return err == nil
}

// Run executes gk with the given arguments. The result's Success is true only
// for a clean exit 0; every failure mode lands in the result, never a panic
// or a raw error.
func (r *Runner) Run(ctx context.Context, args ...string) Result {
	command := "gk " + strings.Join(args, " ")
	result := Result{Command: command, ReturnCode: -1}

	binary := r.binary
	if binary == "" {
		located, err := Locate()
		if err != nil {
			result.Error = err.Error()
			return result
		}
		binary = located
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var stdout, stderr strings.Builder
	cmd := exec.CommandContext(runCtx, binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("running gk", "command", command)
	err := cmd.Run()

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	switch {
	case runCtx.Err() == context.DeadlineExceeded:
		result.Error = fmt.Sprintf("command timed out after %s: %s", r.timeout, command)
	case err == nil:
		result.Success = true
		result.ReturnCode = 0
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ReturnCode = exitErr.ExitCode()
			result.Error = fmt.Sprintf("command exited with status %d", exitErr.ExitCode())
		} else {
			result.Error = err.Error()
		}
	}

	return result
}

// RepoName names the current git repository for display, falling back to the
// working directory's base name outside a checkout.
func RepoName() string {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel").Output()
	if err == nil {
		if top := strings.TrimSpace(string(out)); top != "" {
			return filepath.Base(top)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Base(wd)
}
