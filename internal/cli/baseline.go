package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"patscan/internal/baseline"
)

var (
	baselineExcludes    []string
	baselineNoDefaults  bool
	baselineFailOnError bool
	baselineWorkers     int
	baselineQuiet       bool
	baselinePretty      bool
)

// baselineCmd represents the baseline command
var baselineCmd = &cobra.Command{
	Use:   "baseline <file-or-directory> <output.json>",
	Short: "Extract a sorted string corpus from a C++ source tree",
	Long: `Baseline walks a file or directory for C++ sources, extracts message
patterns from each, and writes the union of all collected strings as a
sorted, deduplicated JSON array.

Files whose extraction fails are skipped and counted unless
--fail-on-error is set.

Examples:
  patscan baseline file.cpp baseline.json
  patscan baseline src/ baseline.json
  patscan baseline src/ baseline.json --exclude build
  patscan baseline src/ baseline.json --exclude "*/test/*" --exclude "*.pb.h"`,
	Args: cobra.ExactArgs(2),
	RunE: runBaseline,
}

func init() {
	rootCmd.AddCommand(baselineCmd)
	baselineCmd.Flags().StringArrayVar(&baselineExcludes, "exclude", nil,
		"exclude paths matching this pattern (substring or glob, repeatable)")
	baselineCmd.Flags().BoolVar(&baselineNoDefaults, "no-default-excludes", false,
		"disable default exclusions (.git/, vendor/, third_party/, ...)")
	baselineCmd.Flags().BoolVar(&baselineFailOnError, "fail-on-error", false,
		"stop at the first file whose extraction fails")
	baselineCmd.Flags().IntVar(&baselineWorkers, "workers", 0,
		"parallel extraction workers (0 = number of CPUs)")
	baselineCmd.Flags().BoolVarP(&baselineQuiet, "quiet", "q", false,
		"disable the progress bar")
	baselineCmd.Flags().BoolVar(&baselinePretty, "pretty", false, "pretty-print JSON output")
}

func runBaseline(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath := args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	excludes := baselineExcludes
	if !baselineNoDefaults {
		excludes = append(excludes, cfg.Baseline.Exclude...)
	}

	discovery := baseline.NewDiscovery(cfg.Baseline.Extensions, excludes)
	files, err := discovery.Discover(inputPath)
	if err != nil {
		return fmt.Errorf("file discovery failed: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no C++ source files found under %s", inputPath)
	}

	workers := baselineWorkers
	if workers == 0 {
		workers = cfg.Baseline.Workers
	}

	generator := baseline.NewGenerator(baseline.Options{
		Extract:     cfg.ExtractOptions(),
		MinWords:    cfg.Baseline.MinWords,
		Workers:     workers,
		FailOnError: baselineFailOnError || cfg.Baseline.FailOnError,
		Progress:    !baselineQuiet,
		Logger:      logger,
	})

	strings, summary, err := generator.Generate(files)
	if err != nil {
		return err
	}

	data, err := marshalJSON(strings, baselinePretty)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	fmt.Printf("Found %d source files (%d excluded), processed %d\n",
		discovery.TotalFiles, discovery.ExcludedFiles, summary.Processed)
	if summary.Failed > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d file(s) failed extraction (use --verbose for details)\n", summary.Failed)
	}
	fmt.Printf("Wrote %d unique strings to %s\n", len(strings), outputPath)
	return nil
}
