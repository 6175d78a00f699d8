package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/corelab/internal/config"
	"github.com/san-kum/corelab/internal/guess"
	"github.com/san-kum/corelab/internal/logger"
	"github.com/san-kum/corelab/internal/storage"
	"github.com/san-kum/corelab/internal/tictactoe"
	"github.com/spf13/cobra"
)

var (
	simulate  int
	plainMode bool
	twoPlayer bool
	noSave    bool
)

func openStore() (storage.Saver, error) {
	if noSave {
		return nil, nil
	}
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return nil, fmt.Errorf("init data dir: %w", err)
	}
	return st, nil
}

func newGuessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guess",
		Short: "number guessing game",
		Long: "Guess the secret number. Presets: easy 1-50 in 10 tries, medium 1-100 in 8, hard 1-200 in 6;\n" +
			"use --difficulty custom with --min, --max and --attempts for your own range.",
		RunE: runGuess,
	}
	f := cmd.Flags()
	f.String("difficulty", config.DefaultDifficulty, "easy, medium, hard or custom")
	f.Int("min", 0, "custom range minimum")
	f.Int("max", 0, "custom range maximum")
	f.Int("attempts", 0, "custom attempt limit")
	f.Int64("seed", 0, "random seed (0 picks one from the clock)")
	f.IntVar(&simulate, "simulate", 0, "let a bisecting bot play this many seeded games and report")
	f.BoolVar(&plainMode, "plain", false, "line-based play instead of the full-screen interface")
	f.BoolVar(&noSave, "no-save", false, "do not record the result")
	v.BindPFlag(config.KeyDifficulty, f.Lookup("difficulty"))
	v.BindPFlag(config.KeyGuessMin, f.Lookup("min"))
	v.BindPFlag(config.KeyGuessMax, f.Lookup("max"))
	v.BindPFlag(config.KeyMaxAttempts, f.Lookup("attempts"))
	v.BindPFlag(config.KeySeed, f.Lookup("seed"))
	return cmd
}

func runGuess(cmd *cobra.Command, args []string) error {
	d, err := cfg.Difficulty()
	if err != nil {
		return err
	}
	seed := uint64(cfg.Guess.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("guess", "difficulty", d.Name, "seed", seed, "plain", plainMode)

	if simulate > 0 {
		st, err := guess.NewEnsemble(d, guess.Bisect, simulate, seed).Run(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d games, %d won (%.1f%%), mean %.2f attempts, worst %d, total score %d\n",
			d.Name, st.Games, st.Wins, 100*st.WinRate(), st.MeanAttempts, st.MaxAttempts, st.TotalScore)
		return nil
	}

	saver, err := openStore()
	if err != nil {
		return err
	}

	if plainMode {
		g, err := guess.NewSeeded(d, seed)
		if err != nil {
			return err
		}
		p := &guess.Plain{Game: g, Saver: saver}
		return p.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m := guess.NewModel(guess.MenuOptions(&d), d.Name, rng, saver)
	_, err = tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
	return err
}

func newTicTacToeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tictactoe",
		Aliases: []string{"ttt"},
		Short:   "tic-tac-toe against the computer or a friend",
		RunE: func(cmd *cobra.Command, args []string) error {
			saver, err := openStore()
			if err != nil {
				return err
			}
			r := &tictactoe.REPL{Saver: saver}
			return r.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), !twoPlayer)
		},
	}
	cmd.Flags().BoolVar(&twoPlayer, "two-player", false, "two humans share the keyboard")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the result")
	return cmd
}
