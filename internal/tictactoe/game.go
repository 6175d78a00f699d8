package tictactoe

import (
	"github.com/san-kum/corelab/internal/storage"
	"github.com/san-kum/corelab/internal/vector"
)

// Game tracks turns on a Board. X always moves first.
type Game struct {
	board *Board
	turn  Mark
	moves *vector.Vector[Move]
	vsAI  bool
}

func NewGame(vsAI bool) (*Game, error) {
	moves, err := vector.New[Move](Size * Size)
	if err != nil {
		return nil, err
	}
	return &Game{board: NewBoard(), turn: X, moves: moves, vsAI: vsAI}, nil
}

func (g *Game) Board() *Board { return g.board }

// Turn is the mark due to move next.
func (g *Game) Turn() Mark { return g.turn }

func (g *Game) Result() Result { return g.board.Result() }

// Play places the current player's mark at m and passes the turn.
func (g *Game) Play(m Move) (Result, error) {
	if r := g.board.Result(); r != InProgress {
		return r, ErrGameOver
	}
	if err := g.board.Place(m, g.turn); err != nil {
		return InProgress, err
	}
	if err := g.moves.Push(m); err != nil {
		return InProgress, err
	}
	g.turn = g.turn.Other()
	return g.board.Result(), nil
}

// PlayAI lets the computer make the current player's move.
func (g *Game) PlayAI() (Move, Result, error) {
	m, ok := BestMove(g.board, g.turn)
	if !ok {
		return Move{}, g.board.Result(), ErrGameOver
	}
	r, err := g.Play(m)
	return m, r, err
}

// Moves lists the moves made so far in order.
func (g *Game) Moves() []Move {
	out := make([]Move, g.moves.Size())
	copy(out, g.moves.Data())
	return out
}

// Record converts a finished game for storage.
func (g *Game) Record() storage.Record {
	outcome := "in progress"
	switch g.board.Result() {
	case XWins:
		outcome = "X"
	case OWins:
		outcome = "O"
	case Tie:
		outcome = "tie"
	}
	mode := "two-player"
	if g.vsAI {
		mode = "vs-ai"
	}
	var seq []byte
	for i, m := range g.Moves() {
		if i > 0 {
			seq = append(seq, ' ')
		}
		seq = append(seq, m.String()...)
	}
	return storage.Record{
		Game:     "tictactoe",
		Outcome:  outcome,
		Attempts: g.moves.Size(),
		Details:  map[string]string{"mode": mode, "moves": string(seq)},
	}
}
