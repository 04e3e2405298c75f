package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ppiankov/evenodd"
	"github.com/ppiankov/evenodd/internal/model"
	"github.com/ppiankov/evenodd/internal/worker"
	"github.com/spf13/cobra"
)

// evenCmd represents the even command
var evenCmd = &cobra.Command{
	Use:   "even <value>...",
	Short: "Report whether each value is an even integer",
	Long: `Even classifies each argument and prints true when it is an even integer.

Arguments are parsed as numbers (integers stay exact, NaN and Inf are
accepted). With --raw they are passed on as strings, which only count as
numbers together with --allow-number-strings.

Example:
  evenodd even 10 -4 7
  evenodd even 3.5 --throw-on-non-integer
  evenodd even --raw " 0x10 " --allow-number-strings -o json`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, evenodd.Even, args)
	},
}

// oddCmd represents the odd command
var oddCmd = &cobra.Command{
	Use:   "odd <value>...",
	Short: "Report whether each value is an odd integer",
	Long: `Odd classifies each argument and prints true when it is an odd integer.

Example:
  evenodd odd 7 8
  evenodd odd NaN --throw-on-nan`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, evenodd.Odd, args)
	},
}

func init() {
	rootCmd.AddCommand(evenCmd)
	rootCmd.AddCommand(oddCmd)

	addPolicyFlags(evenCmd)
	addPolicyFlags(oddCmd)
}

func runCheck(cmd *cobra.Command, kind evenodd.Kind, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	renderer, err := NewRenderer(cfg.Output.Format, cfg.Output.Color)
	if err != nil {
		return err
	}

	raw, _ := cmd.Flags().GetBool("raw")

	processor := worker.NewBatchProcessor(newClassifier(cfg), nil, 0)
	processor.SetRaw(raw)

	inputs := make([]worker.Input, len(args))
	for i, arg := range args {
		inputs[i] = worker.Input{Line: i + 1, Text: arg}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Classifying %d value(s) as %s\n", len(inputs), kind)
		fmt.Fprintf(os.Stderr, "Options: %+v\n\n", cfg.Options)
	}

	report, err := processor.Process(context.Background(), inputs, kind, cfg.Options)
	if err != nil {
		return err
	}

	if err := renderer.RenderEntries(cmd.OutOrStdout(), kind.String(), report.Entries); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	for _, e := range report.Entries {
		if e.Status == model.StatusError {
			return fmt.Errorf("%s: %s", e.Input, e.Error)
		}
	}
	return nil
}

// newClassifier builds a classifier from the configuration
func newClassifier(cfg *model.Config) *evenodd.Classifier {
	logger := newLogger(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	return evenodd.New(
		evenodd.WithLogger(logger),
		evenodd.WithMaxDepth(cfg.Engine.MaxDepth),
	)
}
