package guess

import (
	"context"
	"runtime"

	"github.com/san-kum/corelab/internal/config"
	"golang.org/x/sync/errgroup"
)

// Strategy picks the next guess inside the still-possible range [lo, hi].
type Strategy func(lo, hi int) int

// Bisect guesses the midpoint.
func Bisect(lo, hi int) int { return lo + (hi-lo)/2 }

// Autoplay plays g to the end with strategy, narrowing the range from each
// direction hint.
func Autoplay(g *Game, strategy Strategy) error {
	lo, hi := g.diff.Min, g.diff.Max
	for !g.Over() {
		o, err := g.Guess(min(max(strategy(lo, hi), lo), hi))
		if err != nil {
			return err
		}
		switch o.Direction {
		case Higher:
			lo = o.Guess + 1
		case Lower:
			hi = o.Guess - 1
		}
	}
	return nil
}

// EnsembleStats summarises many automatically played games.
type EnsembleStats struct {
	Games        int
	Wins         int
	TotalScore   int
	MeanAttempts float64
	MaxAttempts  int
}

// WinRate is Wins/Games, 0 for an empty ensemble.
func (s EnsembleStats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

type Ensemble struct {
	diff      config.Difficulty
	strategy  Strategy
	numRuns   int
	seedStart uint64
	workers   int
}

// NewEnsemble plays numRuns games seeded seedStart, seedStart+1, ... with
// strategy (Bisect when nil).
func NewEnsemble(d config.Difficulty, strategy Strategy, numRuns int, seedStart uint64) *Ensemble {
	if strategy == nil {
		strategy = Bisect
	}
	return &Ensemble{
		diff:      d,
		strategy:  strategy,
		numRuns:   numRuns,
		seedStart: seedStart,
		workers:   runtime.GOMAXPROCS(0),
	}
}

// Run plays every game across a bounded set of goroutines. The result does
// not depend on the number of workers.
func (e *Ensemble) Run(ctx context.Context) (EnsembleStats, error) {
	games := make([]*Game, e.numRuns)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := 0; i < e.numRuns; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			game, err := NewSeeded(e.diff, e.seedStart+uint64(i))
			if err != nil {
				return err
			}
			if err := Autoplay(game, e.strategy); err != nil {
				return err
			}
			games[i] = game
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return EnsembleStats{}, err
	}

	var st EnsembleStats
	attempts := 0
	for _, game := range games {
		st.Games++
		if game.Won() {
			st.Wins++
		}
		st.TotalScore += game.Score()
		attempts += game.Attempts()
		st.MaxAttempts = max(st.MaxAttempts, game.Attempts())
	}
	if st.Games > 0 {
		st.MeanAttempts = float64(attempts) / float64(st.Games)
	}
	return st, nil
}
