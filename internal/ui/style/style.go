// Package style holds the palette and glyphs shared by the log handler and
// the build report.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Role names what a piece of text means to the operator.
type Role int

// Roles, in order of increasing severity after Plain.
const (
	Plain Role = iota
	Accent
	Muted
	Success
	Caution
	Failure
)

var palette = map[Role]lipgloss.Color{
	Accent:  lipgloss.Color("#8B5CF6"),
	Muted:   lipgloss.Color("#667085"),
	Success: lipgloss.Color("#22A06B"),
	Caution: lipgloss.Color("#F59E0B"),
	Failure: lipgloss.Color("#D93025"),
}

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Rule is the horizontal separator used around report sections.
const Rule = "============================================================"

// Color returns the hex colour of the role. Plain has none.
func (r Role) Color() lipgloss.Color {
	return palette[r]
}

// Paint renders s in the colour of role r. Plain text passes through.
func Paint(out *termenv.Output, r Role, s string) string {
	c, ok := palette[r]
	if !ok {
		return s
	}
	return out.String(s).Foreground(out.Color(string(c))).String()
}

// Strong is Paint in bold.
func Strong(out *termenv.Output, r Role, s string) string {
	st := out.String(s).Bold()
	if c, ok := palette[r]; ok {
		st = st.Foreground(out.Color(string(c)))
	}
	return st.String()
}
