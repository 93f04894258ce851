package detector

import (
	"runtime"
	"strings"

	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/bundler/internal/core/ports"
)

var _ ports.Platform = (*Platform)(nil)

// Platform reports the host operating system family.
type Platform struct {
	goos string
}

// NewPlatform creates a Platform for the running host.
func NewPlatform() *Platform {
	return &Platform{goos: runtime.GOOS}
}

// NewPlatformFor creates a Platform reporting the given GOOS value.
func NewPlatformFor(goos string) *Platform {
	return &Platform{goos: goos}
}

// Identifier returns the canonical operating system family name,
// e.g. "Windows", "Darwin" or "Linux".
func (p *Platform) Identifier() string {
	return Identify(p.goos)
}

// Identify maps a GOOS value to its operating system family name.
func Identify(goos string) string {
	switch goos {
	case "windows":
		return domain.PlatformWindows
	case "darwin":
		return domain.PlatformDarwin
	case "linux":
		return domain.PlatformLinux
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "dragonfly":
		return "DragonFly"
	case "aix":
		return "AIX"
	case "":
		return ""
	default:
		return strings.ToUpper(goos[:1]) + goos[1:]
	}
}
