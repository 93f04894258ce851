package report

import (
	"io"

	"go.trai.ch/bundler/internal/adapters/detector"
	"go.trai.ch/bundler/internal/core/ports"
)

var _ ports.ReporterFactory = (*Factory)(nil)

// Factory creates Reporters whose colour profile follows the output mode.
type Factory struct {
	w      io.Writer
	detect func() detector.OutputMode
}

// NewFactory creates a Factory writing to w. A nil w writes to stdout.
func NewFactory(w io.Writer) *Factory {
	return &Factory{w: w, detect: detector.DetectEnvironment}
}

// NewReporter resolves mode against the detected environment.
func (f *Factory) NewReporter(mode string) ports.Reporter {
	resolved := detector.ResolveMode(f.detect(), mode)
	return NewReporter(f.w, resolved.Profile())
}
