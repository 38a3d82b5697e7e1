package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (PATSCAN_*)
// 2. Config file (explicit path, or .patscan.yaml in the working directory)
// 3. Default values
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".patscan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("PATSCAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if cfgFile != "" {
				return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults seeds viper with the Default() values so partial config
// files only override what they mention.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("extraction.min_words", d.Extraction.MinWords)
	v.SetDefault("extraction.min_pattern_words", d.Extraction.MinPatternWords)
	v.SetDefault("extraction.builder_calls", d.Extraction.BuilderCalls)
	v.SetDefault("extraction.sink_streams", d.Extraction.SinkStreams)
	v.SetDefault("extraction.sentinels", d.Extraction.Sentinels)
	v.SetDefault("extraction.builder_types", d.Extraction.BuilderTypes)
	v.SetDefault("extraction.strict_accumulators", d.Extraction.StrictAccumulators)

	v.SetDefault("baseline.extensions", d.Baseline.Extensions)
	v.SetDefault("baseline.exclude", d.Baseline.Exclude)
	v.SetDefault("baseline.min_words", d.Baseline.MinWords)
	v.SetDefault("baseline.workers", d.Baseline.Workers)
	v.SetDefault("baseline.fail_on_error", d.Baseline.FailOnError)

	v.SetDefault("compare.threshold", d.Compare.Threshold)
	v.SetDefault("compare.min_length", d.Compare.MinLength)
	v.SetDefault("compare.workers", d.Compare.Workers)
}
