package calc

import (
	"context"
	"io"

	"github.com/san-kum/corelab/internal/repl"
	"github.com/san-kum/corelab/internal/viz"
)

// REPL is the interactive calculator.
type REPL struct {
	calc *Calculator
}

func NewREPL(c *Calculator) *REPL {
	if c == nil {
		c = New(DefaultPrecision)
	}
	return &REPL{calc: c}
}

// Run reads commands from in until quit or end of input.
func (r *REPL) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s := &repl.Session{
		Name:   "calc",
		Prompt: "calc> ",
		Banner: viz.Banner("Corelab Calculator", "Type 'help' for commands, 'quit' to exit"),
		Handle: r.handle,
	}
	return s.Run(ctx, in, out)
}

func (r *REPL) handle(_ context.Context, line string, t *repl.Term) bool {
	cmd, err := ParseLine(line)
	if err != nil {
		t.Println("Error: " + Message(err))
		return false
	}
	switch cmd.Op {
	case OpQuit:
		t.Println("Goodbye!")
		return true
	case OpHelp:
		t.Printf("%s", Help())
		return false
	}

	res, err := r.calc.Evaluate(cmd)
	if err != nil {
		t.Println("Error: " + Message(err))
		return false
	}
	t.Println(res)
	return false
}
