package fileutil

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"

	"github.com/san-kum/corelab/internal/repl"
	"github.com/san-kum/corelab/internal/viz"
)

const helpText = `
=== File Utils Help ===
Commands:
  info <file>        - Show file information
  count <file>       - Count lines, words, chars
  list [directory]   - List directory contents
  copy <src> <dst>   - Copy file
  help               - Show this help
  quit               - Exit program

Example: info myfile.txt
Example: list docs
`

const timeLayout = "Mon Jan _2 15:04:05 2006"

// REPL is the interactive file utility.
type REPL struct{}

func NewREPL() *REPL { return &REPL{} }

func (r *REPL) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s := &repl.Session{
		Name:   "files",
		Prompt: "files> ",
		Banner: viz.Banner("Corelab File Utilities", "Type 'help' for commands or 'quit' to exit"),
		Handle: r.handle,
	}
	return s.Run(ctx, in, out)
}

func (r *REPL) handle(_ context.Context, line string, t *repl.Term) bool {
	args := strings.Fields(line)
	switch args[0] {
	case "quit", "exit":
		t.Println("Goodbye!")
		return true
	case "help":
		t.Printf("%s", helpText)
	case "info":
		if len(args) < 2 {
			t.Println("Usage: info <filename>")
			break
		}
		info, err := Stat(args[1])
		if err != nil {
			t.Println("Error: " + Message(err))
			break
		}
		t.Printf("\n=== File Information: %s ===\n", args[1])
		t.Printf("Size: %d bytes\n", info.Size)
		t.Printf("Type: %s\n", info.Kind())
		t.Printf("Permissions: %s\n", info.Permissions())
		t.Printf("Last modified: %s\n", info.ModTime.Format(timeLayout))
	case "count":
		if len(args) < 2 {
			t.Println("Usage: count <filename>")
			break
		}
		c, err := Count(args[1])
		if err != nil {
			t.Println("Error: " + Message(err))
			break
		}
		t.Printf("\n=== File Statistics: %s ===\n", args[1])
		t.Printf("Lines: %d\nWords: %d\nCharacters: %d\n", c.Lines, c.Words, c.Chars)
	case "list":
		dir := "."
		if len(args) > 1 {
			dir = args[1]
		}
		entries, err := List(dir)
		if err != nil {
			t.Println("Error: " + Message(err))
			break
		}
		t.Printf("\n=== Directory Contents: %s ===\n", dir)
		for _, e := range entries {
			if e.IsDir {
				t.Printf("%s/\n", e.Name)
			} else {
				t.Printf("%s (%d bytes)\n", e.Name, e.Size)
			}
		}
		t.Printf("\nTotal entries: %d\n", len(entries))
	case "copy":
		if len(args) < 3 {
			t.Println("Usage: copy <source> <destination>")
			break
		}
		n, err := Copy(args[1], args[2])
		if err != nil {
			t.Println("Error: " + Message(err))
			break
		}
		t.Printf("Successfully copied %d bytes from '%s' to '%s'\n", n, args[1], args[2])
	default:
		t.Println("Unknown command. Type 'help' for available commands.")
	}
	return false
}

// Message maps an error from this package to the text printed after
// "Error: ".
func Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidPath):
		return "Invalid or dangerous path"
	case errors.Is(err, ErrUnsafeTarget):
		return "Resolved path is not safe"
	case errors.Is(err, ErrInvalidName):
		return "Invalid destination filename"
	case errors.Is(err, ErrSameFile):
		return "Source and destination are the same file"
	case errors.Is(err, ErrNotRegular):
		return "Source is not a regular file"
	case errors.Is(err, fs.ErrNotExist):
		return "File or directory does not exist"
	case errors.Is(err, fs.ErrPermission):
		return "Permission denied"
	}
	var pe *PathError
	if errors.As(err, &pe) {
		return "Cannot " + pe.Op + " '" + pe.Path + "'"
	}
	return err.Error()
}
