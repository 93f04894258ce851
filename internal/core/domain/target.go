package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Target is the operating system family an artifact is built for.
type Target int

const (
	// TargetUnsupported is any host without a bundling profile.
	TargetUnsupported Target = iota
	// TargetWindows builds a single-file .exe.
	TargetWindows
	// TargetMacOS builds a .app bundle.
	TargetMacOS
	// TargetLinux builds an extensionless executable.
	TargetLinux
)

// Platform identifiers as reported by the host, matching the spelling of
// Python's platform.system().
const (
	PlatformWindows = "Windows"
	PlatformDarwin  = "Darwin"
	PlatformLinux   = "Linux"
)

// SelectTarget maps a host platform identifier to a Target.
// Unknown identifiers map to TargetUnsupported.
func SelectTarget(platformID string) Target {
	switch platformID {
	case PlatformWindows:
		return TargetWindows
	case PlatformDarwin:
		return TargetMacOS
	case PlatformLinux:
		return TargetLinux
	default:
		return TargetUnsupported
	}
}

// ParseTarget parses a user supplied target name such as "windows" or "macos".
func ParseTarget(name string) (Target, error) {
	switch strings.ToLower(name) {
	case "windows":
		return TargetWindows, nil
	case "macos", "darwin":
		return TargetMacOS, nil
	case "linux":
		return TargetLinux, nil
	default:
		return TargetUnsupported, zerr.With(ErrUnknownTarget, "target", name)
	}
}

// String returns the human readable target name.
func (t Target) String() string {
	switch t {
	case TargetWindows:
		return "Windows"
	case TargetMacOS:
		return "macOS"
	case TargetLinux:
		return "Linux"
	default:
		return "unsupported"
	}
}

// Supported reports whether the target has a bundling profile.
func (t Target) Supported() bool {
	return t != TargetUnsupported
}

// Windowed reports whether the artifact is built without a console window.
func (t Target) Windowed() bool {
	return t == TargetWindows || t == TargetMacOS
}

// SupportsIcon reports whether the bundler accepts an icon for the target.
func (t Target) SupportsIcon() bool {
	return t == TargetWindows || t == TargetMacOS
}

// DataSeparator is the separator between source and destination in the
// data-bundling flag.
func (t Target) DataSeparator() string {
	if t == TargetWindows {
		return ";"
	}
	return ":"
}

// ArtifactKind names what the build produces, for reporting.
func (t Target) ArtifactKind() string {
	if t == TargetMacOS {
		return "Application"
	}
	return "Executable"
}

// InstallerHint suggests a tool for packaging the artifact into an installer.
func (t Target) InstallerHint() string {
	switch t {
	case TargetWindows:
		return "Use Inno Setup or NSIS"
	case TargetMacOS:
		return "Use create-dmg"
	case TargetLinux:
		return "Use AppImage or dpkg"
	default:
		return ""
	}
}
