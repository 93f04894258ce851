// Package prompt implements operator confirmation on a line-oriented input.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/bundler/internal/adapters/detector"
	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/bundler/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Prompter = (*Prompter)(nil)

// Prompter asks yes/no questions on an input stream.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	logger ports.Logger
	piped  bool
}

// New creates a Prompter reading answers from in and writing questions to out.
// When in is a file that is not a terminal, the first question logs a warning.
func New(in io.Reader, out io.Writer, logger ports.Logger) *Prompter {
	piped := false
	if f, ok := in.(*os.File); ok {
		piped = !detector.IsTerminal(f)
	}
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
		piped:  piped,
	}
}

type answer struct {
	line string
	err  error
}

// Confirm writes question and reads one line. Only "y" in any case confirms;
// the trailing line terminator is the only thing removed from the answer.
// End of input without an answer declines.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	if p.piped {
		p.logger.Warn("stdin is not a terminal, reading the answer from piped input")
		p.piped = false
	}

	if _, err := fmt.Fprint(p.out, question); err != nil {
		return false, zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}

	ch := make(chan answer, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- answer{line: line, err: err}
	}()

	var a answer
	select {
	case <-ctx.Done():
		return false, zerr.Wrap(ctx.Err(), domain.ErrPromptFailed.Error())
	case a = <-ch:
	}

	if a.err != nil && !errors.Is(a.err, io.EOF) {
		return false, zerr.Wrap(a.err, domain.ErrPromptFailed.Error())
	}

	return IsAffirmative(a.line), nil
}

// IsAffirmative reports whether a raw answer line confirms.
func IsAffirmative(line string) bool {
	return strings.EqualFold(strings.TrimRight(line, "\r\n"), "y")
}
