package domain

// OutcomeKind tags a build Outcome.
type OutcomeKind int

const (
	// OutcomeUnexpectedError covers launch failures, I/O errors and anything else.
	OutcomeUnexpectedError OutcomeKind = iota
	// OutcomeSuccess means the tool exited zero.
	OutcomeSuccess
	// OutcomeToolFailure means the tool ran and exited non-zero.
	OutcomeToolFailure
	// OutcomeUnsupportedPlatform means the host has no bundling profile.
	OutcomeUnsupportedPlatform
	// OutcomeUserAborted means the operator declined the confirmation prompt.
	OutcomeUserAborted
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeToolFailure:
		return "tool failure"
	case OutcomeUnsupportedPlatform:
		return "unsupported platform"
	case OutcomeUserAborted:
		return "user aborted"
	default:
		return "unexpected error"
	}
}

// Outcome is the single result of one orchestrator run.
type Outcome struct {
	Kind   OutcomeKind
	Target Target
	// Platform is the host identifier the target was selected from.
	Platform string
	// Artifact is set for OutcomeSuccess.
	Artifact Artifact
	// Command is the invocation that was executed, if any.
	Command CommandSpec
	// ExitCode is the tool exit status for OutcomeToolFailure.
	ExitCode int
	// Err carries the diagnostic for failure kinds.
	Err error
}

// Success builds a successful outcome.
func Success(t Target, cmd CommandSpec, artifact Artifact) Outcome {
	return Outcome{Kind: OutcomeSuccess, Target: t, Command: cmd, Artifact: artifact}
}

// ToolFailure builds an outcome for a non-zero tool exit.
func ToolFailure(t Target, cmd CommandSpec, exitCode int, err error) Outcome {
	return Outcome{Kind: OutcomeToolFailure, Target: t, Command: cmd, ExitCode: exitCode, Err: err}
}

// UnsupportedPlatform builds an outcome for a host without a bundling profile.
func UnsupportedPlatform(platformID string) Outcome {
	return Outcome{Kind: OutcomeUnsupportedPlatform, Platform: platformID}
}

// UserAborted builds an outcome for a declined confirmation.
func UserAborted() Outcome {
	return Outcome{Kind: OutcomeUserAborted}
}

// UnexpectedError builds an outcome for any other failure.
func UnexpectedError(err error) Outcome {
	return Outcome{Kind: OutcomeUnexpectedError, Err: err}
}

// Failed reports whether the outcome must be signalled as a failure to the caller.
func (o Outcome) Failed() bool {
	return o.Kind == OutcomeToolFailure || o.Kind == OutcomeUnexpectedError
}

// ExitStatus is the process exit status for the outcome.
func (o Outcome) ExitStatus() int {
	if o.Failed() {
		return 1
	}
	return 0
}
