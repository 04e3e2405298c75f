package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/evenodd/internal/cache"
	"github.com/ppiankov/evenodd/internal/parity"
	"github.com/ppiankov/evenodd/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	batchKind    string
	batchOut     string
	batchTimeout time.Duration
	noCache      bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Classify every value in a file",
	Long: `Batch classifies values read from a file:
- One value per line; blank lines and lines starting with # are skipped
- Values are classified in order; repeated values are served from a cache
- Rejections and --throw-on-* errors are recorded per line, the run continues
- A report with a run id and totals is written as text, json or yaml

Example:
  evenodd batch values.txt
  evenodd batch values.txt --kind odd -o yaml --report report.yaml
  evenodd batch values.txt --raw --allow-number-strings --throw-on-non-number`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindFlags,
	RunE:    runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	addPolicyFlags(batchCmd)

	batchCmd.Flags().StringVar(&batchKind, "kind", "even", "parity to test for (even, odd)")
	batchCmd.Flags().StringVar(&batchOut, "report", "", "write the report to this path instead of stdout")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the verdict cache")
	batchCmd.Flags().Duration("cache-ttl", 0, "verdict cache TTL (default from config)")
}

func runBatch(cmd *cobra.Command, args []string) (err error) {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	kind, err := parity.ParseKind(batchKind)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	renderer, err := NewRenderer(cfg.Output.Format, cfg.Output.Color && batchOut == "")
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
		fmt.Fprintf(os.Stderr, "  Kind:         %s\n", kind)
		fmt.Fprintf(os.Stderr, "  Max depth:    %d\n", cfg.Engine.MaxDepth)
		fmt.Fprintf(os.Stderr, "  Cache:        %v (ttl %v)\n", cfg.Cache.Enabled, cfg.Cache.TTL)
		fmt.Fprintf(os.Stderr, "  Config file:  %s\n\n", viper.ConfigFileUsed())
	}

	var store cache.Cache
	if cfg.Cache.Enabled {
		store = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	raw, _ := cmd.Flags().GetBool("raw")
	processor := worker.NewBatchProcessor(newClassifier(cfg), store, cfg.Cache.TTL)
	processor.SetRaw(raw)

	report, err := processor.ProcessFile(ctx, file, kind, cfg.Options)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	out := cmd.OutOrStdout()
	if batchOut != "" {
		f, err := os.Create(batchOut)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close report: %w", closeErr)
			}
		}()
		out = f
	}

	if err := renderer.RenderReport(out, report); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if batchOut != "" {
		fmt.Fprintf(os.Stderr, "✓ %d values classified, report written to %s\n", report.Totals.Inputs, batchOut)
	}
	return nil
}
