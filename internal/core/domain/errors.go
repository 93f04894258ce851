package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedPlatform is returned when a command is requested for a platform
	// that has no bundling profile.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrUnknownTarget is returned when a target name given on the command line is not recognized.
	ErrUnknownTarget = zerr.New("unknown target, expected 'windows', 'macos' or 'linux'")

	// ErrEmptyCommand is returned when a command spec is constructed without any tokens.
	ErrEmptyCommand = zerr.New("command has no tokens")

	// ErrEmptyToken is returned when a command spec would contain an empty token.
	ErrEmptyToken = zerr.New("command contains an empty token")

	// ErrAssetProbeFailed is returned when the presence of an optional asset cannot be determined.
	ErrAssetProbeFailed = zerr.New("failed to check optional asset")

	// ErrToolLaunchFailed is returned when the bundling tool process cannot be started.
	ErrToolLaunchFailed = zerr.New("failed to launch bundling tool")

	// ErrPromptFailed is returned when the confirmation answer cannot be read.
	ErrPromptFailed = zerr.New("failed to read confirmation")

	// ErrBuildFailed marks a build failure that has already been reported to the operator.
	ErrBuildFailed = zerr.New("build failed")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrConfigNotFound is returned when an explicitly requested project file does not exist.
	ErrConfigNotFound = zerr.New("project file not found")

	// ErrInvalidProjectName is returned when the project name contains unsupported characters.
	ErrInvalidProjectName = zerr.New("project name can only contain alphanumeric characters, dots, hyphens and underscores")

	// ErrMissingEntryPoint is returned when the project has no entry point.
	ErrMissingEntryPoint = zerr.New("project entry point is required")

	// ErrMissingTool is returned when the project does not name a bundling tool.
	ErrMissingTool = zerr.New("bundling tool is required")

	// ErrMissingDistDir is returned when the project output directory is empty.
	ErrMissingDistDir = zerr.New("output directory is required")

	// ErrInvalidDataMapping is returned when a data mapping has an empty source or destination.
	ErrInvalidDataMapping = zerr.New("data mapping requires both source and dest")

	// ErrUnknownLogFormat is returned when --log-format names an unsupported format.
	ErrUnknownLogFormat = zerr.New("unknown log format, expected 'pretty' or 'json'")

	// ErrArtifactInspectFailed is returned when the produced artifact cannot be inspected.
	ErrArtifactInspectFailed = zerr.New("failed to inspect artifact")
)

// ToolExitError reports that the bundling tool ran and exited with a non-zero status.
type ToolExitError struct {
	Code int
	Err  error
}

func (e *ToolExitError) Error() string {
	if e.Err == nil {
		return "bundling tool exited with a non-zero status"
	}
	return e.Err.Error()
}

func (e *ToolExitError) Unwrap() error {
	return e.Err
}
