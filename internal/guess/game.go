// Package guess implements the number-guessing game: the rules in Game, a
// bubbletea front end in tui.go and a plain line-mode front end in plain.go.
package guess

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/san-kum/corelab/internal/config"
	"github.com/san-kum/corelab/internal/numeric"
	"github.com/san-kum/corelab/internal/storage"
	"github.com/san-kum/corelab/internal/vector"
)

const (
	BaseScore      = 100
	AttemptPenalty = 10
	LevelBonus     = 10
)

var ErrGameOver = errors.New("guess: game is over")

// RangeError reports a guess outside the game's range. It does not use up
// an attempt.
type RangeError struct {
	Guess, Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("guess: %d is not between %d and %d", e.Guess, e.Min, e.Max)
}

type Hint int

const (
	HintExact Hint = iota
	HintVeryClose
	HintClose
	HintWarmer
	HintCold
)

func hintFor(distance int) Hint {
	switch {
	case distance == 0:
		return HintExact
	case distance <= 5:
		return HintVeryClose
	case distance <= 10:
		return HintClose
	case distance <= 20:
		return HintWarmer
	}
	return HintCold
}

func (h Hint) String() string {
	switch h {
	case HintExact:
		return "🎉 Correct! You guessed it!"
	case HintVeryClose:
		return "🔥 Very close!"
	case HintClose:
		return "🌡️  Close!"
	case HintWarmer:
		return "❄️  Getting warmer..."
	}
	return "🧊 Cold!"
}

// Direction tells the player where the secret lies relative to the guess.
type Direction int

const (
	Exact Direction = iota
	Higher
	Lower
)

func (d Direction) String() string {
	switch d {
	case Higher:
		return "Try higher!"
	case Lower:
		return "Try lower!"
	}
	return ""
}

// Outcome is the result of one counted guess.
type Outcome struct {
	Guess     int
	Attempt   int
	Hint      Hint
	Direction Direction
	Won       bool
	Over      bool
}

func (o Outcome) String() string {
	if o.Direction == Exact {
		return o.Hint.String()
	}
	return o.Hint.String() + " " + o.Direction.String()
}

// Game is one round. It is not safe for concurrent use.
type Game struct {
	diff     config.Difficulty
	secret   int
	attempts int
	won      bool
	history  *vector.IntVector
}

// NewGame draws a secret in [d.Min, d.Max] from rng.
func NewGame(d config.Difficulty, rng *rand.Rand) (*Game, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return newGame(d, d.Min+rng.IntN(d.Max-d.Min+1))
}

// NewSeeded is NewGame with a PCG source built from seed.
func NewSeeded(d config.Difficulty, seed uint64) (*Game, error) {
	return NewGame(d, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func newGame(d config.Difficulty, secret int) (*Game, error) {
	history, err := vector.NewInt(d.MaxAttempts)
	if err != nil {
		return nil, err
	}
	return &Game{diff: d, secret: secret, history: history}, nil
}

// Guess scores n. Guesses outside the range return a *RangeError and are
// not counted.
func (g *Game) Guess(n int) (Outcome, error) {
	if g.Over() {
		return Outcome{}, ErrGameOver
	}
	if n < g.diff.Min || n > g.diff.Max {
		return Outcome{}, &RangeError{Guess: n, Min: g.diff.Min, Max: g.diff.Max}
	}

	if err := g.history.Push(int32(n)); err != nil {
		return Outcome{}, err
	}
	g.attempts++

	out := Outcome{
		Guess:   n,
		Attempt: g.attempts,
		Hint:    hintFor(absInt(n - g.secret)),
	}
	switch {
	case n < g.secret:
		out.Direction = Higher
	case n > g.secret:
		out.Direction = Lower
	default:
		g.won = true
		out.Won = true
	}
	out.Over = g.Over()
	return out, nil
}

func (g *Game) Difficulty() config.Difficulty { return g.diff }

func (g *Game) Attempts() int { return g.attempts }

func (g *Game) Remaining() int { return g.diff.MaxAttempts - g.attempts }

func (g *Game) Won() bool { return g.won }

// Over reports whether the secret was found or every attempt is used.
func (g *Game) Over() bool {
	return g.won || g.attempts >= g.diff.MaxAttempts
}

// Secret is meant for the end-of-game summary.
func (g *Game) Secret() int { return g.secret }

// History returns the counted guesses in order.
func (g *Game) History() []int32 { return g.history.Values() }

// Score is zero unless the game was won.
func (g *Game) Score() int {
	if !g.won {
		return 0
	}
	return numeric.Max(0, BaseScore-(g.attempts-1)*AttemptPenalty+g.diff.Level*LevelBonus)
}

// Rating grades a win by how few attempts it took.
func (g *Game) Rating() string {
	switch {
	case !g.won:
		return "Better luck next time!"
	case g.attempts == 1:
		return "🏆 Perfect! First try!"
	case g.attempts <= g.diff.MaxAttempts/3:
		return "🌟 Excellent guessing!"
	case g.attempts <= g.diff.MaxAttempts/2:
		return "👍 Good job!"
	}
	return "💪 You made it!"
}

// Record converts a finished game for storage.
func (g *Game) Record() storage.Record {
	outcome := "lost"
	if g.won {
		outcome = "won"
	}
	return storage.Record{
		Game:     "guess",
		Outcome:  outcome,
		Attempts: g.attempts,
		Score:    g.Score(),
		History:  g.History(),
		Details: map[string]string{
			"difficulty": g.diff.Name,
			"range":      strconv.Itoa(g.diff.Min) + "-" + strconv.Itoa(g.diff.Max),
			"secret":     strconv.Itoa(g.secret),
		},
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
