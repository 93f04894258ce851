// Package output builds termenv outputs whose colour profile follows NO_COLOR
// and the selected report mode.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ProfileFunc selects a colour profile when an output is created.
type ProfileFunc func() termenv.Profile

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

// ColorProfile detects what the attached terminal supports, or Ascii under NO_COLOR.
func ColorProfile() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI is the 16-colour profile used for CI logs, or Ascii under NO_COLOR.
func ColorProfileANSI() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New returns an output on w using the detected profile. A nil w means stderr.
func New(w io.Writer) *termenv.Output {
	return NewWithProfile(w, ColorProfile)
}

// NewWithProfile returns an output on w using profileFn. The output always
// behaves as a TTY so that the chosen profile is honoured for pipes and buffers.
func NewWithProfile(w io.Writer, profileFn ProfileFunc) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	if profileFn == nil {
		profileFn = ColorProfile
	}
	return termenv.NewOutput(w, termenv.WithProfile(profileFn()), termenv.WithTTY(true))
}
