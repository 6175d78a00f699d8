package tictactoe

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/corelab/internal/storage"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
		ok   bool
	}{
		{"A1", Move{0, 0}, true},
		{"b2", Move{1, 1}, true},
		{" C3 ", Move{2, 2}, true},
		{"D1", Move{}, false},
		{"A4", Move{}, false},
		{"A0", Move{}, false},
		{"1A", Move{}, false},
		{"A", Move{}, false},
		{"A12", Move{}, false},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("ParseMove(%q) error = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.ok && !errors.Is(err, ErrBadMove) {
			t.Errorf("ParseMove(%q) error = %v, want ErrBadMove", tt.in, err)
		}
	}
	if s := (Move{2, 0}).String(); s != "C1" {
		t.Errorf("Move.String() = %q", s)
	}
}

// board builds a position from three row strings using X, O and '.'.
func board(t *testing.T, rows ...string) *Board {
	t.Helper()
	b := NewBoard()
	for i, row := range rows {
		for j, c := range row {
			if c == '.' {
				continue
			}
			if err := b.Place(Move{i, j}, Mark(c)); err != nil {
				t.Fatal(err)
			}
		}
	}
	return b
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Result
	}{
		{"empty", []string{"...", "...", "..."}, InProgress},
		{"row", []string{"OO.", "XXX", "..."}, XWins},
		{"column", []string{"OX.", "OX.", "O.X"}, OWins},
		{"diagonal", []string{"X.O", ".XO", "..X"}, XWins},
		{"anti-diagonal", []string{"X.O", "XO.", "O.X"}, OWins},
		{"tie", []string{"XOX", "XOO", "OXX"}, Tie},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := board(t, tt.rows...).Result(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaceOccupied(t *testing.T) {
	b := NewBoard()
	if err := b.Place(Move{0, 0}, X); err != nil {
		t.Fatal(err)
	}
	if err := b.Place(Move{0, 0}, O); !errors.Is(err, ErrOccupied) {
		t.Errorf("got %v, want ErrOccupied", err)
	}
	if err := b.Place(Move{3, 0}, O); !errors.Is(err, ErrBadMove) {
		t.Errorf("got %v, want ErrBadMove", err)
	}
}

func TestBestMove(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Move
	}{
		{"centre first", []string{"...", "...", "..."}, Move{1, 1}},
		{"corner after centre", []string{"...", ".X.", "..."}, Move{0, 0}},
		{"win beats block", []string{"OO.", "XX.", "..."}, Move{0, 2}},
		{"block", []string{"XX.", ".O.", "..."}, Move{0, 2}},
		{"anti-diagonal win", []string{"X.O", ".O.", "..X"}, Move{2, 0}},
		{"last cell", []string{"XOX", "XOO", "OX."}, Move{2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board(t, tt.rows...)
			got, ok := BestMove(b, O)
			if !ok || got != tt.want {
				t.Errorf("got %v (%v), want %v", got, ok, tt.want)
			}
		})
	}

	if _, ok := BestMove(board(t, "XOX", "XOO", "OXX"), O); ok {
		t.Error("expected no move on a full board")
	}
}

func TestBestMoveLeavesBoardUnchanged(t *testing.T) {
	b := board(t, "X..", ".O.", "..X")
	before := b.String()
	BestMove(b, O)
	if diff := cmp.Diff(before, b.String()); diff != "" {
		t.Errorf("board changed (-before +after):\n%s", diff)
	}
}

func TestGame(t *testing.T) {
	g, err := NewGame(false)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"A1", "B1", "A2", "B2"} {
		m, _ := ParseMove(s)
		if r, err := g.Play(m); err != nil || r != InProgress {
			t.Fatalf("play %s: %v %v", s, r, err)
		}
	}
	if g.Turn() != X {
		t.Fatalf("turn = %v", g.Turn())
	}
	r, err := g.Play(Move{0, 2})
	if err != nil || r != XWins {
		t.Fatalf("got %v %v", r, err)
	}
	if _, err := g.Play(Move{2, 2}); !errors.Is(err, ErrGameOver) {
		t.Errorf("play after win: %v", err)
	}

	want := storage.Record{
		Game:     "tictactoe",
		Outcome:  "X",
		Attempts: 5,
		Details:  map[string]string{"mode": "two-player", "moves": "A1 B1 A2 B2 A3"},
	}
	if diff := cmp.Diff(want, g.Record()); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

type memSaver struct{ records []storage.Record }

func (s *memSaver) Save(r storage.Record) (string, error) {
	s.records = append(s.records, r)
	return "tictactoe_test", nil
}

func TestREPLTwoPlayer(t *testing.T) {
	saver := &memSaver{}
	in := strings.NewReader("zz\nA1\nA1\nB1\nA2\nB2\nA3\n")
	var out bytes.Buffer
	if err := (&REPL{Saver: saver}).Run(context.Background(), in, &out, false); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"Invalid input! Use format like A1, B2, C3",
		"Invalid move! Position already taken.",
		"Player O's turn: ",
		"=== Game Over ===\nPlayer X wins!",
		"Saved as tictactoe_test",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if len(saver.records) != 1 || saver.records[0].Outcome != "X" {
		t.Errorf("saved %+v", saver.records)
	}
}

func TestREPLVersusAI(t *testing.T) {
	in := strings.NewReader("A1\nC3\nB1\n")
	var out bytes.Buffer
	if err := (&REPL{}).Run(context.Background(), in, &out, true); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"AI plays: B2",
		"AI plays: A3",
		"AI plays: C1",
		"Player O wins!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
