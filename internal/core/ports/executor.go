// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/bundler/internal/core/domain"
)

// Executor defines the interface for running the bundling tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command as a child process and blocks until it exits.
	//
	// It returns nil on a zero exit status, a *domain.ToolExitError when the
	// process exits non-zero, and any other error when the process could not
	// be started.
	Execute(ctx context.Context, cmd domain.CommandSpec) error
}
