// Package baseline batch-extracts message patterns from a C++ source
// tree and aggregates them into a sorted, deduplicated string corpus
// suitable for later similarity comparison.
package baseline

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"patscan/internal/extract"
)

// Options controls a baseline generation run.
type Options struct {
	Extract  extract.Options
	MinWords int // aggregate-level filter applied to every collected string

	// Workers bounds parallel file extraction; 0 means GOMAXPROCS.
	Workers int

	// FailOnError stops the batch on the first file whose extraction
	// reports errors. When false such files are skipped and counted.
	FailOnError bool

	// Progress enables a progress bar on stderr.
	Progress bool

	Logger *zap.Logger
}

// Summary reports what a generation run did.
type Summary struct {
	TotalFiles    int
	ExcludedFiles int
	Processed     int
	Failed        int
}

// Generator runs extraction across many files with a bounded worker
// pool. Each file gets its own Extractor: the core owns per-run mutable
// state and is not goroutine-safe, but independent instances need no
// coordination.
type Generator struct {
	opts Options
	log  *zap.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(opts Options) *Generator {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{opts: opts, log: log}
}

// Generate extracts every file and returns the union of all collected
// strings, filtered by the aggregate word minimum, sorted and unique.
func (g *Generator) Generate(files []string) ([]string, *Summary, error) {
	summary := &Summary{TotalFiles: len(files)}

	var bar *progressbar.ProgressBar
	if g.opts.Progress {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("Extracting"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("files/s"),
		)
	}

	workers := g.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var mu sync.Mutex
	seen := map[string]bool{}

	var eg errgroup.Group
	eg.SetLimit(workers)

	for _, file := range files {
		eg.Go(func() error {
			extractor := extract.New(g.opts.Extract)
			result, err := extractor.ExtractFile(file)

			if bar != nil {
				bar.Add(1)
			}

			if err != nil {
				if g.opts.FailOnError {
					return fmt.Errorf("extraction failed for %s: %w", file, err)
				}
				g.log.Warn("skipping file after extraction error",
					zap.String("file", file),
					zap.Error(err))
				mu.Lock()
				summary.Failed++
				mu.Unlock()
				return nil
			}

			mu.Lock()
			summary.Processed++
			for _, s := range result.Combined() {
				if wordCount(s) < g.opts.MinWords {
					continue
				}
				seen[s] = true
			}
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, summary, err
	}

	strings := make([]string, 0, len(seen))
	for s := range seen {
		strings = append(strings, s)
	}
	sort.Strings(strings)

	g.log.Info("baseline generated",
		zap.Int("files", summary.Processed),
		zap.Int("failed", summary.Failed),
		zap.Int("strings", len(strings)))

	return strings, summary, nil
}
