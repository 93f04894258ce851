package ports

import "context"

// Prompter asks the operator for confirmation.
//
//go:generate mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Confirm shows question and blocks until the operator answers.
	// It returns true only for an affirmative answer.
	Confirm(ctx context.Context, question string) (bool, error)
}
