// Package tictactoe implements a 3x3 noughts-and-crosses game with a simple
// rule-based opponent.
package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

const Size = 3

var (
	ErrBadMove   = errors.New("tictactoe: moves look like A1, B2, C3")
	ErrOccupied  = errors.New("tictactoe: position already taken")
	ErrGameOver  = errors.New("tictactoe: game is over")
	ErrWrongTurn = errors.New("tictactoe: not this player's turn")
)

type Mark byte

const (
	Empty Mark = ' '
	X     Mark = 'X'
	O     Mark = 'O'
)

func (m Mark) String() string { return string(m) }

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// Result is the state of a board: undecided, a win for one side or a tie.
type Result int

const (
	InProgress Result = iota
	XWins
	OWins
	Tie
)

func (r Result) String() string {
	switch r {
	case XWins:
		return "Player X wins!"
	case OWins:
		return "Player O wins!"
	case Tie:
		return "It's a tie!"
	}
	return "in progress"
}

// Move addresses one cell, zero based.
type Move struct {
	Row, Col int
}

// ParseMove reads a row letter A-C (any case) followed by a column digit
// 1-3.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Move{}, ErrBadMove
	}
	r := s[0] | 0x20
	c := s[1]
	if r < 'a' || r > 'c' || c < '1' || c > '3' {
		return Move{}, ErrBadMove
	}
	return Move{Row: int(r - 'a'), Col: int(c - '1')}, nil
}

func (m Move) String() string {
	return fmt.Sprintf("%c%d", 'A'+m.Row, m.Col+1)
}

func (m Move) valid() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

type Board struct {
	cells [Size][Size]Mark
	moves int
}

func NewBoard() *Board {
	b := &Board{}
	for i := range b.cells {
		for j := range b.cells[i] {
			b.cells[i][j] = Empty
		}
	}
	return b
}

// At returns the mark in a cell, Empty when out of range.
func (b *Board) At(m Move) Mark {
	if !m.valid() {
		return Empty
	}
	return b.cells[m.Row][m.Col]
}

// Free reports whether m is on the board and unoccupied.
func (b *Board) Free(m Move) bool {
	return m.valid() && b.cells[m.Row][m.Col] == Empty
}

// Place puts mark at m.
func (b *Board) Place(m Move, mark Mark) error {
	if !m.valid() {
		return ErrBadMove
	}
	if b.cells[m.Row][m.Col] != Empty {
		return ErrOccupied
	}
	b.cells[m.Row][m.Col] = mark
	b.moves++
	return nil
}

func (b *Board) clear(m Move) {
	b.cells[m.Row][m.Col] = Empty
	b.moves--
}

// Full reports whether every cell is occupied.
func (b *Board) Full() bool {
	return b.moves >= Size*Size
}

var lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Winner returns the mark holding a complete line, or Empty.
func (b *Board) Winner() Mark {
	for _, l := range lines {
		a := b.At(l[0])
		if a != Empty && a == b.At(l[1]) && a == b.At(l[2]) {
			return a
		}
	}
	return Empty
}

// Result combines Winner and Full.
func (b *Board) Result() Result {
	switch b.Winner() {
	case X:
		return XWins
	case O:
		return OWins
	}
	if b.Full() {
		return Tie
	}
	return InProgress
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("     1   2   3\n")
	sb.WriteString("   +---+---+---+\n")
	for i := 0; i < Size; i++ {
		fmt.Fprintf(&sb, " %c ", 'A'+i)
		for j := 0; j < Size; j++ {
			fmt.Fprintf(&sb, "| %c ", b.cells[i][j])
		}
		sb.WriteString("|\n")
		sb.WriteString("   +---+---+---+\n")
	}
	return sb.String()
}
