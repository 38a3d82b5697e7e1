package config

import "patscan/internal/extract"

// Config is the complete patscan configuration. It can be loaded from
// .patscan.yaml with environment variable overrides (PATSCAN_*).
type Config struct {
	Extraction ExtractionConfig `yaml:"extraction" mapstructure:"extraction"`
	Baseline   BaselineConfig   `yaml:"baseline" mapstructure:"baseline"`
	Compare    CompareConfig    `yaml:"compare" mapstructure:"compare"`
}

// ExtractionConfig tunes the pattern extractor core.
type ExtractionConfig struct {
	MinWords           int      `yaml:"min_words" mapstructure:"min_words"`                     // acceptance threshold for comments and free literals
	MinPatternWords    int      `yaml:"min_pattern_words" mapstructure:"min_pattern_words"`     // acceptance threshold for chain patterns
	BuilderCalls       []string `yaml:"builder_calls" mapstructure:"builder_calls"`             // call texts that start an anonymous builder chain
	SinkStreams        []string `yaml:"sink_streams" mapstructure:"sink_streams"`               // qualified identifiers treated as output streams
	Sentinels          []string `yaml:"sentinels" mapstructure:"sentinels"`                     // end-of-line identifiers contributing empty strings
	BuilderTypes       []string `yaml:"builder_types" mapstructure:"builder_types"`             // type names registering accumulator variables
	StrictAccumulators bool     `yaml:"strict_accumulators" mapstructure:"strict_accumulators"` // fail on chains into undeclared variables
}

// BaselineConfig tunes directory scanning for the baseline command.
type BaselineConfig struct {
	Extensions  []string `yaml:"extensions" mapstructure:"extensions"`       // file extensions treated as C++ sources
	Exclude     []string `yaml:"exclude" mapstructure:"exclude"`             // exclusion patterns (substring or glob)
	MinWords    int      `yaml:"min_words" mapstructure:"min_words"`         // aggregate-level word filter
	Workers     int      `yaml:"workers" mapstructure:"workers"`             // parallel extraction workers; 0 means GOMAXPROCS
	FailOnError bool     `yaml:"fail_on_error" mapstructure:"fail_on_error"` // stop the batch on the first failing file
}

// CompareConfig tunes fuzzy corpus comparison.
type CompareConfig struct {
	Threshold int `yaml:"threshold" mapstructure:"threshold"` // minimum similarity score (0-100)
	MinLength int `yaml:"min_length" mapstructure:"min_length"`
	Workers   int `yaml:"workers" mapstructure:"workers"`
}

// ExtractOptions converts the extraction section into extractor options.
func (c *Config) ExtractOptions() extract.Options {
	return extract.Options{
		MinWords:           c.Extraction.MinWords,
		MinPatternWords:    c.Extraction.MinPatternWords,
		BuilderCalls:       c.Extraction.BuilderCalls,
		SinkStreams:        c.Extraction.SinkStreams,
		Sentinels:          c.Extraction.Sentinels,
		BuilderTypes:       c.Extraction.BuilderTypes,
		StrictAccumulators: c.Extraction.StrictAccumulators,
	}
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			MinWords:           3,
			MinPatternWords:    3,
			BuilderCalls:       []string{"str::stream()", "std::stream()"},
			SinkStreams:        []string{"std::cout", "std::cerr", "std::clog"},
			Sentinels:          []string{"endl", "std::endl"},
			BuilderTypes:       []string{"StringBuilder"},
			StrictAccumulators: true,
		},
		Baseline: BaselineConfig{
			Extensions: []string{".cpp", ".cc", ".cxx", ".c", ".hpp", ".h"},
			Exclude: []string{
				".git/",
				".svn/",
				".hg/",
				"node_modules/",
				"__pycache__/",
				".vscode/",
				".idea/",
				"vendor/",
				"third_party/",
				"external/",
			},
			MinWords: 2,
			Workers:  0,
		},
		Compare: CompareConfig{
			Threshold: 80,
			MinLength: 3,
			Workers:   0,
		},
	}
}
