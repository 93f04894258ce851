package shell_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundler/internal/adapters/shell"
	"go.trai.ch/bundler/internal/core/domain"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func newSpec(t *testing.T, tokens ...string) domain.CommandSpec {
	t.Helper()
	spec, err := domain.NewCommandSpec(tokens...)
	require.NoError(t, err)
	return spec
}

func TestExecutor_Execute_Success(t *testing.T) {
	skipOnWindows(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	executor := shell.NewExecutor(shell.WithStreams(strings.NewReader(""), stdout, stderr))

	err := executor.Execute(context.Background(), newSpec(t, "sh", "-c", "echo building; echo warning >&2"))
	require.NoError(t, err)

	assert.Equal(t, "building\n", stdout.String())
	assert.Equal(t, "warning\n", stderr.String())
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	skipOnWindows(t)

	stderr := &bytes.Buffer{}
	executor := shell.NewExecutor(shell.WithStreams(nil, &bytes.Buffer{}, stderr))

	err := executor.Execute(context.Background(), newSpec(t, "sh", "-c", "echo 'missing module' >&2; exit 3"))
	require.Error(t, err)

	var exitErr *domain.ToolExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, "missing module\n", stderr.String())
}

func TestExecutor_Execute_LaunchFailure(t *testing.T) {
	executor := shell.NewExecutor(shell.WithStreams(nil, &bytes.Buffer{}, &bytes.Buffer{}))

	err := executor.Execute(context.Background(), newSpec(t, "bundler-test-no-such-tool", "--onefile"))
	require.Error(t, err)

	var exitErr *domain.ToolExitError
	assert.False(t, errors.As(err, &exitErr), "launch failure must not look like a tool exit")
	assert.Contains(t, err.Error(), "failed to start process")
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	executor := shell.NewExecutor(
		shell.WithStreams(nil, stdout, &bytes.Buffer{}),
		shell.WithDir(dir),
	)

	err := executor.Execute(context.Background(), newSpec(t, "sh", "-c", "pwd -P"))
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(stdout.String()))
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	executor := shell.NewExecutor()

	err := executor.Execute(context.Background(), domain.CommandSpec{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrEmptyCommand.Error())
}

func TestExecutor_Execute_ContextCanceled(t *testing.T) {
	skipOnWindows(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	executor := shell.NewExecutor(shell.WithStreams(nil, &bytes.Buffer{}, &bytes.Buffer{}))

	err := executor.Execute(ctx, newSpec(t, "sleep", "5"))
	require.Error(t, err)

	var exitErr *domain.ToolExitError
	require.ErrorAs(t, err, &exitErr)
	assert.NotEqual(t, 0, exitErr.Code)
}
