package ports

import "go.trai.ch/bundler/internal/core/domain"

// Reporter presents the build to the operator.
// It decouples orchestration from terminal formatting.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Banner is shown before the confirmation prompt.
	Banner(platformID string, project domain.Project)

	// Building is shown once the command for target is about to run.
	Building(target domain.Target, cmd domain.CommandSpec)

	// Plan shows a command without running it.
	Plan(target domain.Target, cmd domain.CommandSpec)

	// Result shows the final outcome, including next steps on success.
	Result(outcome domain.Outcome)
}

// ReporterFactory creates the Reporter for an output mode such as "auto",
// "rich" or "linear". An empty mode auto-detects.
type ReporterFactory interface {
	NewReporter(mode string) Reporter
}
