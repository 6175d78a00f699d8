package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/san-kum/corelab/internal/config"
	"github.com/san-kum/corelab/internal/logger"
	"github.com/san-kum/corelab/internal/viz"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	configFile string
	dataDir    string
	logLevel   string
	logFile    string
	theme      string

	v         *viper.Viper
	cfg       *config.Config
	logCloser io.Closer
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v = config.NewViper()

	rootCmd := &cobra.Command{
		Use:               "corelab",
		Short:             "dynamic arrays, checked arithmetic and the small programs built on them",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				logCloser.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	v.BindPFlag(config.KeyDataDir, pf.Lookup("data"))
	v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	v.BindPFlag(config.KeyLogFile, pf.Lookup("log-file"))
	v.BindPFlag(config.KeyTheme, pf.Lookup("theme"))

	rootCmd.AddCommand(
		newCalcCmd(),
		newEvalCmd(),
		newTextCmd(),
		newFilesCmd(),
		newGuessCmd(),
		newTicTacToeCmd(),
		newScoresCmd(),
		newGrowthCmd(),
		newConfigCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "print version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), "corelab", version)
			},
		},
	)
	return rootCmd
}

// setup resolves configuration and the logger before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.ReadFile(v, configFile); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = config.FromViper(v)

	closer, err := logger.Configure(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logCloser = closer

	if err := viz.ApplyTheme(cfg.Theme); err != nil {
		return err
	}
	logger.Debug("config resolved", "command", cmd.Name(), "data_dir", cfg.DataDir, "file", configFile)
	return nil
}
