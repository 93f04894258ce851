package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/bundler/internal/ui/output"
	"go.trai.ch/bundler/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one coloured line per record:
// an optional severity glyph, the message, then key=value attributes.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string // group qualifier for keys, with trailing dot
	attrs  string // pre-rendered handler attributes, each with a leading space
}

// NewPrettyHandler creates a new PrettyHandler writing to w. A nil w means stderr.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func severity(level slog.Level) (string, style.Role) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", style.Failure
	case level >= slog.LevelWarn:
		return style.Warning + " ", style.Caution
	default:
		return "", style.Muted
	}
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	glyph, role := severity(r.Level)

	var line strings.Builder
	line.WriteString(glyph)
	line.WriteString(r.Message)
	line.WriteString(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&line, h.prefix, attr)
		return true
	})

	_, err := h.out.WriteString(style.Paint(h.out, role, line.String()) + "\n")
	return err
}

// WithAttrs returns a handler that appends attrs, qualified by the current group.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var b strings.Builder
	b.WriteString(h.attrs)
	for _, attr := range attrs {
		writeAttr(&b, h.prefix, attr)
	}

	clone := *h
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a handler that qualifies later keys with name.
// Nested groups are joined with dots.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func writeAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(attr.Key)
	b.WriteByte('=')
	b.WriteString(attr.Value.String())
}
