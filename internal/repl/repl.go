// Package repl runs the line-oriented read-eval-print loops shared by the
// corelab programs.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/san-kum/corelab/internal/logger"
)

// Term is the handler's view of the session: the output writer plus the
// ability to read follow-up lines (for modes such as line collection).
type Term struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newTerm(in io.Reader, out io.Writer) *Term {
	s := bufio.NewScanner(in)
	s.Buffer(make([]byte, 0, 4096), 1<<20)
	return &Term{scanner: s, out: out}
}

// ReadLine prints prompt and returns the next input line without its
// newline. ok is false at end of input.
func (t *Term) ReadLine(prompt string) (line string, ok bool) {
	if prompt != "" {
		fmt.Fprint(t.out, prompt)
	}
	if !t.scanner.Scan() {
		return "", false
	}
	return strings.TrimRight(t.scanner.Text(), "\r"), true
}

// Err reports a read error other than end of input.
func (t *Term) Err() error {
	return t.scanner.Err()
}

func (t *Term) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

func (t *Term) Println(args ...any) {
	fmt.Fprintln(t.out, args...)
}

// Writer exposes the raw output for tabular printers.
func (t *Term) Writer() io.Writer {
	return t.out
}

// Handler processes one non-empty input line. Returning true ends the
// session.
type Handler func(ctx context.Context, line string, t *Term) (quit bool)

// Session describes one REPL program.
type Session struct {
	Name   string
	Prompt string
	Banner string
	Handle Handler
}

// Run prints the banner and feeds every non-blank line to Handle until it
// asks to quit, input ends, or ctx is cancelled.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	term := newTerm(in, out)
	lg := logger.Component(s.Name)

	if s.Banner != "" {
		term.Println(s.Banner)
		term.Println()
	}

	lines := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok := term.ReadLine(s.Prompt)
		if !ok {
			if err := term.Err(); err != nil {
				return fmt.Errorf("%s: read input: %w", s.Name, err)
			}
			term.Println()
			lg.Debug("input closed", "lines", lines)
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines++
		logLine(lg, line)
		if s.Handle(ctx, line, term) {
			lg.Debug("session ended", "lines", lines)
			return nil
		}
	}
}

func logLine(lg *log.Logger, line string) {
	fields := strings.Fields(line)
	lg.Debug("dispatch", "op", fields[0], "args", len(fields)-1)
}
