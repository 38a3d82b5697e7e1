package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidThreshold indicates a similarity threshold outside 0-100.
	ErrInvalidThreshold = errors.New("invalid similarity threshold")

	// ErrInvalidMinWords indicates a negative word threshold.
	ErrInvalidMinWords = errors.New("invalid minimum word count")

	// ErrInvalidWorkers indicates a negative worker count.
	ErrInvalidWorkers = errors.New("invalid worker count")

	// ErrEmptyExtensions indicates no source extensions are configured.
	ErrEmptyExtensions = errors.New("empty source extension list")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Extraction.MinWords < 0 {
		errs = append(errs, fmt.Errorf("%w: extraction.min_words = %d", ErrInvalidMinWords, cfg.Extraction.MinWords))
	}
	if cfg.Extraction.MinPatternWords < 0 {
		errs = append(errs, fmt.Errorf("%w: extraction.min_pattern_words = %d", ErrInvalidMinWords, cfg.Extraction.MinPatternWords))
	}

	if len(cfg.Baseline.Extensions) == 0 {
		errs = append(errs, ErrEmptyExtensions)
	}
	for _, ext := range cfg.Baseline.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("baseline extension %q must start with a dot", ext))
		}
	}
	if cfg.Baseline.MinWords < 0 {
		errs = append(errs, fmt.Errorf("%w: baseline.min_words = %d", ErrInvalidMinWords, cfg.Baseline.MinWords))
	}
	if cfg.Baseline.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: baseline.workers = %d", ErrInvalidWorkers, cfg.Baseline.Workers))
	}

	if cfg.Compare.Threshold < 0 || cfg.Compare.Threshold > 100 {
		errs = append(errs, fmt.Errorf("%w: compare.threshold = %d", ErrInvalidThreshold, cfg.Compare.Threshold))
	}
	if cfg.Compare.MinLength < 0 {
		errs = append(errs, fmt.Errorf("%w: compare.min_length = %d", ErrInvalidMinWords, cfg.Compare.MinLength))
	}
	if cfg.Compare.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: compare.workers = %d", ErrInvalidWorkers, cfg.Compare.Workers))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
