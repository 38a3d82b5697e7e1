package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"patscan/internal/extract"
)

var (
	extractPretty bool
	extractFull   bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file.cpp> [output.json]",
	Short: "Extract message patterns from a single C++ file",
	Long: `Extract parses one C++ file and emits the strings it recovers:
finalized << chain patterns, per-accumulator final values, free-standing
comments and free-standing string literals.

By default the output is a single JSON array combining all four
collections. With --full the four collections are kept separate.

Examples:
  patscan extract file.cpp                # print patterns to stdout
  patscan extract file.cpp output.json    # save patterns to a JSON file
  patscan extract file.cpp --full --pretty`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolVar(&extractPretty, "pretty", false, "pretty-print JSON output")
	extractCmd.Flags().BoolVar(&extractFull, "full", false, "emit the four collections separately instead of one combined array")
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file %s: %w", inputPath, err)
	}
	if !isCppExtension(filepath.Ext(inputPath)) {
		fmt.Fprintf(os.Stderr, "Warning: %q may not be a C++ file\n", inputPath)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	extractor := extract.New(cfg.ExtractOptions())
	result, err := extractor.ExtractFile(inputPath)
	if err != nil {
		if result != nil && len(result.Errors) > 0 {
			fmt.Fprintf(os.Stderr, "Extraction failed with %d error(s):\n", len(result.Errors))
			for i, xerr := range result.Errors {
				fmt.Fprintf(os.Stderr, "\nError %d:\n%s\n", i+1, xerr.Error())
			}
			os.Exit(1)
		}
		return err
	}

	logger.Debug("extraction complete",
		zap.String("file", inputPath),
		zap.Int("patterns", len(result.Patterns)),
		zap.Int("accumulators", len(result.Accumulators)),
		zap.Int("comments", len(result.Comments)),
		zap.Int("literals", len(result.Literals)))

	var payload any = result.Combined()
	if extractFull {
		payload = result
	}

	data, err := marshalJSON(payload, extractPretty)
	if err != nil {
		return err
	}

	if len(args) == 2 {
		if err := os.WriteFile(args[1], data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[1], err)
		}
		fmt.Printf("Extracted %d strings from %s\n", len(result.Combined()), inputPath)
		fmt.Printf("Results saved to: %s\n", args[1])
		return nil
	}

	fmt.Println(string(data))
	return nil
}

func marshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func isCppExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".cpp", ".cc", ".cxx", ".c", ".hpp", ".h":
		return true
	}
	return false
}
