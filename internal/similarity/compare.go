// Package similarity scores every string of a source corpus against
// every string of a target corpus with token-sort-ratio fuzzy matching,
// reporting the pairs above a similarity threshold.
package similarity

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// Options controls a comparison run.
type Options struct {
	// Threshold is the minimum similarity score (0-100) for a match.
	Threshold int

	// MinLength skips strings shorter than this many bytes.
	MinLength int

	// Workers bounds parallelism; 0 means GOMAXPROCS.
	Workers int

	// Progress enables a progress bar on stderr.
	Progress bool
}

// Match is one target string scored against a source string.
type Match struct {
	TargetIndex int    `json:"target_index"`
	Score       int    `json:"similarity_score"`
	TargetLine  string `json:"target_line"`
}

// SourceMatches groups all matches for one source string.
type SourceMatches struct {
	SourceIndex int     `json:"source_index"`
	SourceLine  string  `json:"source_line"`
	Matches     []Match `json:"target_matches"`
	MatchCount  int     `json:"match_count"`
}

// Report is the full comparison output.
type Report struct {
	SourceCount  int             `json:"source_count"`
	TargetCount  int             `json:"target_count"`
	Threshold    int             `json:"threshold"`
	MatchedLines []SourceMatches `json:"matched_lines"`
}

// LoadCorpus reads a JSON array of strings, the shape the baseline
// command writes.
func LoadCorpus(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var corpus []string
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("expected a JSON array of strings in %s: %w", path, err)
	}
	return corpus, nil
}

// Compare scores every source line against every target line and
// returns the lines with at least one match at or above the threshold,
// ordered by source index with matches sorted best-first.
func Compare(source, target []string, opts Options) (*Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Targets shorter than the minimum never match; filter them once.
	type indexed struct {
		index int
		line  string
	}
	filteredTarget := make([]indexed, 0, len(target))
	for i, line := range target {
		if len(line) >= opts.MinLength {
			filteredTarget = append(filteredTarget, indexed{index: i, line: line})
		}
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(len(source),
			progressbar.OptionSetDescription("Comparing"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("lines/s"),
		)
	}

	var mu sync.Mutex
	var matched []SourceMatches

	var eg errgroup.Group
	eg.SetLimit(workers)

	for i, line := range source {
		eg.Go(func() error {
			defer func() {
				if bar != nil {
					bar.Add(1)
				}
			}()

			if len(line) < opts.MinLength {
				return nil
			}

			var matches []Match
			for _, t := range filteredTarget {
				if skipByLength(len(line), len(t.line), opts.Threshold) {
					continue
				}
				score := fuzzy.TokenSortRatio(line, t.line)
				if score >= opts.Threshold {
					matches = append(matches, Match{
						TargetIndex: t.index,
						Score:       score,
						TargetLine:  t.line,
					})
				}
			}
			if len(matches) == 0 {
				return nil
			}

			sort.SliceStable(matches, func(a, b int) bool {
				return matches[a].Score > matches[b].Score
			})

			mu.Lock()
			matched = append(matched, SourceMatches{
				SourceIndex: i,
				SourceLine:  line,
				Matches:     matches,
				MatchCount:  len(matches),
			})
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(matched, func(a, b int) bool {
		return matched[a].SourceIndex < matched[b].SourceIndex
	})

	return &Report{
		SourceCount:  len(source),
		TargetCount:  len(target),
		Threshold:    opts.Threshold,
		MatchedLines: matched,
	}, nil
}

// skipByLength prunes pairs whose lengths differ so much that a high
// similarity score is implausible. Only applied at strict thresholds so
// permissive runs stay exhaustive.
func skipByLength(sourceLen, targetLen, threshold int) bool {
	if threshold <= 60 {
		return false
	}
	longer := sourceLen
	shorter := targetLen
	if targetLen > sourceLen {
		longer, shorter = targetLen, sourceLen
	}
	if longer == 0 {
		return false
	}
	return float64(shorter)/float64(longer) < 0.5
}
