// Package detector provides host and terminal detection.
package detector

import (
	"os"

	"go.trai.ch/bundler/internal/ui/output"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for terminal reports.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeRich uses the full colour profile of the terminal.
	ModeRich
	// ModeLinear restricts output to basic ANSI for logs and CI.
	ModeLinear
)

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stdout is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	isTTY := IsTerminal(os.Stdout)

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeRich
}

// ResolveMode applies user override flag to auto-detection.
// userFlag should be one of: "auto", "rich", "linear", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "rich":
		return ModeRich
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}

// Profile returns the colour profile selector for the mode.
func (m OutputMode) Profile() output.ProfileFunc {
	if m == ModeLinear {
		return output.ColorProfileANSI
	}
	return output.ColorProfile
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}
