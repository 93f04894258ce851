// Package shell provides a process executor for running the bundling tool.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
// The child inherits the configured standard streams so its progress is visible live.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	dir    string
}

// Option configures an Executor.
type Option func(*Executor)

// WithStreams overrides the standard streams handed to the child process.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// WithDir runs the child process in dir instead of the working directory.
func WithDir(dir string) Option {
	return func(e *Executor) {
		e.dir = dir
	}
}

// NewExecutor creates a new Executor attached to the process' standard streams.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs the command and waits for it to complete.
func (e *Executor) Execute(ctx context.Context, spec domain.CommandSpec) error {
	if spec.IsZero() {
		return domain.ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, spec.Name(), spec.Args()...) //nolint:gosec // command built by planner
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	cmd.Dir = e.dir

	if err := cmd.Start(); err != nil {
		return zerr.With(
			zerr.Wrap(errors.Join(domain.ErrToolLaunchFailed, err), "failed to start process"),
			"command", spec.Name(),
		)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &domain.ToolExitError{Code: exitErr.ExitCode(), Err: err}
		}
		return zerr.With(zerr.Wrap(err, "failed to wait for process"), "command", spec.Name())
	}

	return nil
}
