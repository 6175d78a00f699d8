package textproc

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/san-kum/corelab/internal/repl"
	"github.com/san-kum/corelab/internal/viz"
)

const helpText = `
=== Text Processor Help ===
Commands:
  upper <text>         - Convert to uppercase
  lower <text>         - Convert to lowercase
  reverse <text>       - Reverse text
  count <char> <text>  - Count character occurrences
  trim <text>          - Remove extra whitespace
  replace <find> <replace> <text> - Find and replace
  sort                 - Enter sort mode for lines
  help                 - Show this help
  quit                 - Exit program

Example: upper Hello World
Example: count a banana
Example: replace old new This is old text
`

// REPL is the interactive text processor.
type REPL struct{}

func NewREPL() *REPL { return &REPL{} }

func (r *REPL) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s := &repl.Session{
		Name:   "text",
		Prompt: "text> ",
		Banner: viz.Banner("Corelab Text Processor", "Type 'help' for commands or 'quit' to exit"),
		Handle: r.handle,
	}
	return s.Run(ctx, in, out)
}

// splitCommand returns the first word of line and everything after the
// whitespace that follows it.
func splitCommand(line string) (cmd, rest string) {
	line = strings.TrimLeft(line, " \t")
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeft(line[i:], " \t")
}

func (r *REPL) handle(ctx context.Context, line string, t *repl.Term) bool {
	cmd, rest := splitCommand(line)
	if len(rest) > MaxTextLength {
		t.Printf("Error: Text too long (max %d characters)\n", MaxTextLength)
		return false
	}

	unary := func(name string, f func(string) string) {
		if rest == "" {
			t.Printf("Usage: %s <text>\n", name)
			return
		}
		t.Printf("Result: %s\n", f(rest))
	}

	switch cmd {
	case "quit", "exit":
		t.Println("Goodbye!")
		return true
	case "help":
		t.Printf("%s", helpText)
	case "sort":
		runSortMode(ctx, t)
	case "upper":
		unary("upper", Upper)
	case "lower":
		unary("lower", Lower)
	case "reverse":
		unary("reverse", Reverse)
	case "trim":
		if rest == "" {
			t.Println("Usage: trim <text>")
			break
		}
		t.Printf("Result: '%s'\n", Trim(rest))
	case "count":
		char, text := splitCommand(rest)
		if char == "" || text == "" {
			t.Println("Usage: count <char> <text>")
			break
		}
		c, _ := utf8.DecodeRuneInString(char)
		t.Printf("Character '%c' appears %d times\n", c, CountChar(text, c))
	case "replace":
		find, tail := splitCommand(rest)
		with, text := splitCommand(tail)
		if find == "" || with == "" || text == "" {
			t.Println("Usage: replace <find> <replace> <text>")
			break
		}
		t.Printf("Result: %s\n", Replace(text, find, with))
	default:
		t.Println("Unknown command. Type 'help' for available commands.")
	}
	return false
}

// runSortMode reads lines until an empty line, EndMarker, end of input or
// the line limit, then prints them before and after sorting.
func runSortMode(ctx context.Context, t *repl.Term) {
	t.Println()
	t.Println("=== Sort Mode ===")
	t.Printf("Enter lines of text (empty line or %s to finish, max %d lines):\n", EndMarker, MaxSortLines)

	s, err := NewSorter()
	if err != nil {
		t.Println("Error: Memory allocation failed")
		return
	}
	defer s.Release()

	for ctx.Err() == nil {
		line, ok := t.ReadLine(strconv.Itoa(s.Len()+1) + "> ")
		if !ok || line == "" || line == EndMarker {
			break
		}
		if err := s.Add(line); err != nil {
			if errors.Is(err, ErrTooManyLines) {
				t.Printf("Warning: Maximum number of lines (%d) reached\n", MaxSortLines)
				break
			}
			t.Printf("Error: %v\n", err)
			return
		}
	}

	if s.Len() == 0 {
		t.Println("No lines to sort.")
		return
	}

	t.Println()
	t.Println("Original lines:")
	for i, l := range s.Lines() {
		t.Printf("%d: %s\n", i+1, l)
	}
	sorted, err := s.Sort()
	if err != nil {
		t.Println("Error: Sorting failed")
		return
	}
	t.Println()
	t.Println("Sorted lines:")
	for i, l := range sorted {
		t.Printf("%d: %s\n", i+1, l)
	}
}
