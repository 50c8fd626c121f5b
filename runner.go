// FILE: lixenwraith/dconf/runner.go
package dconf

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Runner invokes an external program and returns its standard output.
// A non-nil error means the program could not be launched; an exit status
// is not an error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RunnerFunc adapts a plain function to the Runner interface
type RunnerFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Run calls f
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return f(ctx, name, args...)
}

// ExecRunner runs programs with os/exec, resolving the binary on each call
type ExecRunner struct {
	logger zerolog.Logger
}

// NewExecRunner creates an ExecRunner that reports non-zero exits to logger
func NewExecRunner(logger zerolog.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

// Run resolves name on PATH, executes it with args and returns stdout.
// Stderr is captured separately and only logged.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, path, args...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || ctx.Err() != nil {
			return nil, err
		}
		// Exit status is ignored, the tool's stdout is still the answer
		r.logger.Warn().
			Str("tool", name).
			Strs("args", args).
			Int("exit_code", exitErr.ExitCode()).
			Str("stderr", strings.TrimSpace(stderr.String())).
			Msg("configuration tool exited with non-zero status")
	}
	return stdout.Bytes(), nil
}
