package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"patscan/internal/similarity"
)

var (
	compareThreshold int
	compareWorkers   int
	compareQuiet     bool
	comparePretty    bool
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <source.json> <target.json> [report.json]",
	Short: "Fuzzy-compare two extracted string corpora",
	Long: `Compare scores every string of the source corpus against every string
of the target corpus using token-sort-ratio similarity, and reports the
pairs at or above the threshold.

Both inputs are JSON arrays of strings, the shape baseline writes.

Examples:
  patscan compare new.json baseline.json
  patscan compare new.json baseline.json report.json --threshold 85`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().IntVar(&compareThreshold, "threshold", 0,
		"minimum similarity score 0-100 (default from config, 80)")
	compareCmd.Flags().IntVar(&compareWorkers, "workers", 0,
		"parallel comparison workers (0 = number of CPUs)")
	compareCmd.Flags().BoolVarP(&compareQuiet, "quiet", "q", false,
		"disable the progress bar")
	compareCmd.Flags().BoolVar(&comparePretty, "pretty", false, "pretty-print JSON output")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := similarity.LoadCorpus(args[0])
	if err != nil {
		return err
	}
	target, err := similarity.LoadCorpus(args[1])
	if err != nil {
		return err
	}

	threshold := compareThreshold
	if threshold == 0 {
		threshold = cfg.Compare.Threshold
	}
	workers := compareWorkers
	if workers == 0 {
		workers = cfg.Compare.Workers
	}

	logger.Debug("comparing corpora",
		zap.Int("source", len(source)),
		zap.Int("target", len(target)),
		zap.Int("threshold", threshold))

	report, err := similarity.Compare(source, target, similarity.Options{
		Threshold: threshold,
		MinLength: cfg.Compare.MinLength,
		Workers:   workers,
		Progress:  !compareQuiet,
	})
	if err != nil {
		return err
	}

	data, err := marshalJSON(report, comparePretty)
	if err != nil {
		return err
	}

	if len(args) == 3 {
		if err := os.WriteFile(args[2], data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[2], err)
		}
		fmt.Printf("Matched %d of %d source lines (threshold %d)\n",
			len(report.MatchedLines), report.SourceCount, report.Threshold)
		fmt.Printf("Report saved to: %s\n", args[2])
		return nil
	}

	fmt.Println(string(data))
	return nil
}
