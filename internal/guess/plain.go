package guess

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/corelab/internal/logger"
	"github.com/san-kum/corelab/internal/repl"
	"github.com/san-kum/corelab/internal/storage"
	"github.com/san-kum/corelab/internal/viz"
)

// Plain plays one game over a line-oriented terminal.
type Plain struct {
	Game  *Game
	Saver storage.Saver
}

func (p *Plain) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	d := p.Game.Difficulty()
	hint := "Range " + strconv.Itoa(d.Min) + " - " + strconv.Itoa(d.Max) +
		", " + strconv.Itoa(d.MaxAttempts) + " attempts. Type 'quit' to give up."
	s := &repl.Session{
		Name:   "guess",
		Prompt: "Enter your guess: ",
		Banner: viz.Banner("Number Guessing Game · "+d.Name, hint),
		Handle: p.handle,
	}
	return s.Run(ctx, in, out)
}

func (p *Plain) handle(_ context.Context, line string, t *repl.Term) bool {
	line = strings.TrimSpace(line)
	if line == "quit" || line == "exit" {
		t.Printf("The secret number was %d.\n", p.Game.Secret())
		return true
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		t.Println("Invalid input! Please enter a number.")
		return false
	}

	d := p.Game.Difficulty()
	o, err := p.Game.Guess(n)
	var re *RangeError
	switch {
	case errors.As(err, &re):
		t.Printf("Invalid guess! Please enter a number between %d and %d.\n", re.Min, re.Max)
		return false
	case err != nil:
		t.Printf("Error: %v\n", err)
		return true
	}

	t.Printf("Attempt %d/%d: %d - %s\n", o.Attempt, d.MaxAttempts, o.Guess, o)
	if !o.Over {
		return false
	}
	writeSummary(t.Writer(), p.Game)
	p.save(t)
	return true
}

func (p *Plain) save(t *repl.Term) {
	if p.Saver == nil {
		return
	}
	id, err := p.Saver.Save(p.Game.Record())
	if err != nil {
		logger.Component("guess").Warn("could not save game", "err", err)
		return
	}
	t.Printf("Saved as %s\n", id)
}

// writeSummary prints the end-of-game statistics block.
func writeSummary(w io.Writer, g *Game) {
	var b strings.Builder
	b.WriteString("\n=== Game Statistics ===\n")
	b.WriteString("Secret number was: " + strconv.Itoa(g.Secret()) + "\n")
	b.WriteString("Attempts used: " + strconv.Itoa(g.Attempts()) + "/" + strconv.Itoa(g.Difficulty().MaxAttempts) + "\n")
	if g.Won() {
		b.WriteString("Result: Victory! 🎉\n")
		b.WriteString("Score: " + strconv.Itoa(g.Score()) + " points\n")
	} else {
		b.WriteString("Result: Game Over 😔\n")
	}
	b.WriteString(g.Rating() + "\n")
	io.WriteString(w, b.String())
}
