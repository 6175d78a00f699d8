package tictactoe

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/san-kum/corelab/internal/logger"
	"github.com/san-kum/corelab/internal/repl"
	"github.com/san-kum/corelab/internal/storage"
	"github.com/san-kum/corelab/internal/viz"
)

// REPL plays one game over a line-oriented terminal.
type REPL struct {
	Saver storage.Saver
}

// Run plays a single game. With vsAI the human is X and the computer O.
func (r *REPL) Run(ctx context.Context, in io.Reader, out io.Writer, vsAI bool) error {
	g, err := NewGame(vsAI)
	if err != nil {
		return err
	}

	title, hint := "Two Player Tic-Tac-Toe", "Player 1 is X, Player 2 is O"
	if vsAI {
		title, hint = "Tic-Tac-Toe vs AI", "You are X, AI is O"
	}
	s := &repl.Session{
		Name:   "tictactoe",
		Banner: viz.Banner(title, hint+". Enter moves like A1, B2, C3."),
	}
	s.Prompt = g.Board().String() + "\n" + r.prompt(g, vsAI)
	s.Handle = func(_ context.Context, line string, t *repl.Term) bool {
		done := r.turn(g, vsAI, line, t)
		s.Prompt = g.Board().String() + "\n" + r.prompt(g, vsAI)
		return done
	}
	return s.Run(ctx, in, out)
}

func (r *REPL) prompt(g *Game, vsAI bool) string {
	if vsAI {
		return "Your move (X): "
	}
	return "Player " + g.Turn().String() + "'s turn: "
}

// turn handles one input line and reports whether the game has ended.
func (r *REPL) turn(g *Game, vsAI bool, line string, t *repl.Term) bool {
	line = strings.TrimSpace(line)
	if line == "quit" || line == "exit" {
		t.Println("Game abandoned.")
		return true
	}
	m, err := ParseMove(line)
	if err != nil {
		t.Println("Invalid input! Use format like A1, B2, C3")
		return false
	}
	res, err := g.Play(m)
	if errors.Is(err, ErrOccupied) {
		t.Println("Invalid move! Position already taken.")
		return false
	}
	if err != nil {
		t.Printf("Error: %v\n", err)
		return true
	}

	if res == InProgress && vsAI {
		t.Println("AI is thinking...")
		var am Move
		am, res, err = g.PlayAI()
		if err != nil {
			t.Printf("Error: %v\n", err)
			return true
		}
		t.Printf("AI plays: %s\n", am)
	}
	if res == InProgress {
		return false
	}

	t.Println()
	t.Printf("%s", g.Board())
	t.Println()
	t.Println("=== Game Over ===")
	t.Println(res.String())
	r.save(g, t)
	return true
}

func (r *REPL) save(g *Game, t *repl.Term) {
	if r.Saver == nil {
		return
	}
	id, err := r.Saver.Save(g.Record())
	if err != nil {
		logger.Component("tictactoe").Warn("could not save game", "err", err)
		return
	}
	t.Printf("Saved as %s\n", id)
}
