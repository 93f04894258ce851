package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// CommandSpec is an immutable external-process invocation.
type CommandSpec struct {
	tokens []string
}

// NewCommandSpec creates a CommandSpec from the given tokens.
// The first token is the executable. Empty tokens are rejected.
func NewCommandSpec(tokens ...string) (CommandSpec, error) {
	if len(tokens) == 0 {
		return CommandSpec{}, ErrEmptyCommand
	}
	for i, tok := range tokens {
		if tok == "" {
			return CommandSpec{}, zerr.With(ErrEmptyToken, "index", i)
		}
	}
	return CommandSpec{tokens: slices.Clone(tokens)}, nil
}

// Tokens returns a copy of all tokens, executable first.
func (c CommandSpec) Tokens() []string {
	return slices.Clone(c.tokens)
}

// Name returns the executable.
func (c CommandSpec) Name() string {
	if len(c.tokens) == 0 {
		return ""
	}
	return c.tokens[0]
}

// Args returns a copy of the arguments after the executable.
func (c CommandSpec) Args() []string {
	if len(c.tokens) < 2 {
		return nil
	}
	return slices.Clone(c.tokens[1:])
}

// IsZero reports whether the spec was never constructed.
func (c CommandSpec) IsZero() bool {
	return len(c.tokens) == 0
}

// HasPrefix reports whether any token starts with prefix.
func (c CommandSpec) HasPrefix(prefix string) bool {
	return slices.ContainsFunc(c.tokens, func(tok string) bool {
		return strings.HasPrefix(tok, prefix)
	})
}

// String renders the command for display. Tokens containing spaces are quoted.
func (c CommandSpec) String() string {
	parts := make([]string, len(c.tokens))
	for i, tok := range c.tokens {
		if strings.ContainsAny(tok, " \t\"") {
			parts[i] = `"` + strings.ReplaceAll(tok, `"`, `\"`) + `"`
			continue
		}
		parts[i] = tok
	}
	return strings.Join(parts, " ")
}
