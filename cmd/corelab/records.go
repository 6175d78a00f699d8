package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/corelab/internal/config"
	"github.com/san-kum/corelab/internal/export"
	"github.com/san-kum/corelab/internal/storage"
	"github.com/san-kum/corelab/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	scoresJSON  bool
	scoresGame  string
	scoresLimit int
	scoresLog   bool

	plotWidth  int
	plotHeight int
	svgOut     string
	csvOut     string
)

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "list recorded games",
		RunE:  listScores,
	}
	cmd.Flags().BoolVar(&scoresJSON, "json", false, "print records as JSON")
	cmd.Flags().StringVar(&scoresGame, "game", "", "only show this game (guess, tictactoe)")
	cmd.Flags().IntVar(&scoresLimit, "limit", 0, "show at most this many records")
	cmd.Flags().BoolVar(&scoresLog, "log", false, "show the games.csv log in the order games were played")
	return cmd
}

func listScores(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	if scoresLog {
		return showLog(cmd, st)
	}
	records, err := st.List()
	if err != nil {
		return err
	}

	if scoresGame != "" {
		kept := records[:0]
		for _, r := range records {
			if strings.EqualFold(r.Game, scoresGame) {
				kept = append(kept, r)
			}
		}
		records = kept
	}
	if scoresLimit > 0 && len(records) > scoresLimit {
		records = records[:scoresLimit]
	}

	out := cmd.OutOrStdout()
	if scoresJSON {
		return storage.ExportJSON(out, records)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "no games recorded")
		return nil
	}
	return storage.WriteTable(out, records)
}

func showLog(cmd *cobra.Command, st *storage.Store) error {
	entries, err := st.ReadLog()
	if err != nil {
		return err
	}
	if scoresGame != "" {
		kept := entries[:0]
		for _, e := range entries {
			if strings.EqualFold(e.Game, scoresGame) {
				kept = append(kept, e)
			}
		}
		entries = kept
	}
	if scoresLimit > 0 && len(entries) > scoresLimit {
		entries = entries[len(entries)-scoresLimit:]
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "no games recorded")
		return nil
	}
	return storage.WriteLogTable(out, entries)
}

func newGrowthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "plot how an IntVector's capacity follows its size",
		RunE:  plotGrowth,
	}
	f := cmd.Flags()
	f.Int("capacity", config.DefaultCapacity, "initial capacity")
	f.Int("pushes", config.DefaultPushes, "values to push before popping them all")
	f.IntVar(&plotWidth, "width", 70, "plot width")
	f.IntVar(&plotHeight, "height", 12, "plot height")
	f.StringVar(&svgOut, "svg", "", "also write the trace as an SVG chart")
	f.StringVar(&csvOut, "csv", "", "also write the trace as CSV")
	v.BindPFlag(config.KeyInitialCapacity, f.Lookup("capacity"))
	v.BindPFlag(config.KeyPushes, f.Lookup("pushes"))
	return cmd
}

func plotGrowth(cmd *cobra.Command, args []string) error {
	samples, err := viz.GrowthTrace(cfg.Vector.InitialCapacity, cfg.Vector.Pushes)
	if err != nil {
		return err
	}
	grows, shrinks := viz.Resizes(samples)
	peak := 0
	for _, s := range samples {
		peak = max(peak, s.Capacity)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Banner("IntVector growth", fmt.Sprintf("start %d, %d pushes then pops", cfg.Vector.InitialCapacity, cfg.Vector.Pushes)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.PlotGrowth(samples, plotWidth, plotHeight))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %d   %s %d   %s %d   %s %d\n",
		viz.MetricLabel.Render("operations"), len(samples)-1,
		viz.MetricLabel.Render("grows"), grows,
		viz.MetricLabel.Render("shrinks"), shrinks,
		viz.MetricLabel.Render("peak capacity"), peak)

	if svgOut != "" {
		svg := export.SeriesToSVG(export.GrowthSeries(samples), 800, 300)
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Fprintln(out, "wrote", svgOut)
	}
	if csvOut != "" {
		f, err := os.Create(csvOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteGrowthCSV(f, samples); err != nil {
			return err
		}
		fmt.Fprintln(out, "wrote", csvOut)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "inspect or create configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "print the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "init <path>",
			Short: "write a default config file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := args[0]
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists", path)
				}
				if err := config.Save(path, config.DefaultConfig()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "check <path>",
			Short: "parse a config file and resolve its difficulty",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := config.Load(args[0])
				if err != nil {
					return err
				}
				d, err := c.Difficulty()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %s %d-%d, %d attempts\n", d.Name, d.Min, d.Max, d.MaxAttempts)
				return nil
			},
		},
	)
	return cmd
}
