package detector_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bundler/internal/adapters/detector"
	"go.trai.ch/bundler/internal/core/domain"
)

func TestIdentify(t *testing.T) {
	tests := map[string]string{
		"windows": "Windows",
		"darwin":  "Darwin",
		"linux":   "Linux",
		"freebsd": "FreeBSD",
		"openbsd": "OpenBSD",
		"plan9":   "Plan9",
		"":        "",
	}

	for goos, want := range tests {
		t.Run(goos, func(t *testing.T) {
			assert.Equal(t, want, detector.Identify(goos))
		})
	}
}

func TestPlatform_SelectsTarget(t *testing.T) {
	assert.Equal(t, domain.TargetWindows, domain.SelectTarget(detector.NewPlatformFor("windows").Identifier()))
	assert.Equal(t, domain.TargetMacOS, domain.SelectTarget(detector.NewPlatformFor("darwin").Identifier()))
	assert.Equal(t, domain.TargetLinux, domain.SelectTarget(detector.NewPlatformFor("linux").Identifier()))
	assert.Equal(t, domain.TargetUnsupported, domain.SelectTarget(detector.NewPlatformFor("freebsd").Identifier()))
}

func TestNewPlatform_Host(t *testing.T) {
	assert.Equal(t, detector.Identify(runtime.GOOS), detector.NewPlatform().Identifier())
}
