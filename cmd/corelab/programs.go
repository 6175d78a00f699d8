package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/corelab/internal/calc"
	"github.com/san-kum/corelab/internal/config"
	"github.com/san-kum/corelab/internal/fileutil"
	"github.com/san-kum/corelab/internal/logger"
	"github.com/san-kum/corelab/internal/textproc"
	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "interactive calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := calc.NewREPL(calc.New(cfg.Calculator.Precision))
			return r.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int("precision", config.DefaultPrecision, "decimals for floating-point results")
	v.BindPFlag(config.KeyPrecision, cmd.Flags().Lookup("precision"))
	return cmd
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "eval <op> [a] [b]",
		Short:   "evaluate one calculator command",
		Example: "  corelab eval + 5 3\n  corelab eval fact 10",
		Args:    cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			c, err := calc.ParseLine(line)
			if err == nil && (c.Op == calc.OpHelp || c.Op == calc.OpQuit) {
				fmt.Fprint(cmd.OutOrStdout(), calc.Help())
				return nil
			}
			var res string
			if err == nil {
				res, err = calc.New(cfg.Calculator.Precision).Evaluate(c)
			}
			if err != nil {
				logger.Debug("eval failed", "line", line, "err", err)
				return errors.New(calc.Message(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	// negative operands are not flags
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text",
		Short: "interactive text processor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return textproc.NewREPL().Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "interactive file utilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			if root := cfg.Files.Root; root != "" && root != "." {
				if err := fileutil.ValidatePath(root); err != nil {
					return fmt.Errorf("files root %q: %w", root, err)
				}
				if err := os.Chdir(root); err != nil {
					return err
				}
			}
			return fileutil.NewREPL().Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().String("root", ".", "directory the session starts in")
	v.BindPFlag(config.KeyFilesRoot, cmd.Flags().Lookup("root"))
	return cmd
}
