package similarity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Compare:
// - Identical strings score 100 and match at any threshold
// - Token order differences still score high (token sort)
// - Unrelated strings fall below the threshold
// - Short strings are skipped on both sides
// - The length-ratio prefilter only applies at strict thresholds
// - Matches are grouped per source line, best score first
// - LoadCorpus rejects JSON that is not an array of strings

func TestCompare_IdenticalStrings(t *testing.T) {
	t.Parallel()

	report, err := Compare(
		[]string{"connection refused by remote host"},
		[]string{"connection refused by remote host"},
		Options{Threshold: 80, MinLength: 3},
	)
	require.NoError(t, err)

	require.Len(t, report.MatchedLines, 1)
	m := report.MatchedLines[0]
	assert.Equal(t, 0, m.SourceIndex)
	require.Len(t, m.Matches, 1)
	assert.Equal(t, 100, m.Matches[0].Score)
}

func TestCompare_TokenOrderInsensitive(t *testing.T) {
	t.Parallel()

	report, err := Compare(
		[]string{"remote host refused connection"},
		[]string{"connection refused remote host"},
		Options{Threshold: 90, MinLength: 3},
	)
	require.NoError(t, err)
	require.Len(t, report.MatchedLines, 1)
}

func TestCompare_BelowThresholdDropped(t *testing.T) {
	t.Parallel()

	report, err := Compare(
		[]string{"connection refused by remote host"},
		[]string{"completely unrelated text about cooking recipes"},
		Options{Threshold: 80, MinLength: 3},
	)
	require.NoError(t, err)
	assert.Empty(t, report.MatchedLines)
}

func TestCompare_ShortStringsSkipped(t *testing.T) {
	t.Parallel()

	report, err := Compare(
		[]string{"ab"},
		[]string{"ab"},
		Options{Threshold: 80, MinLength: 3},
	)
	require.NoError(t, err)
	assert.Empty(t, report.MatchedLines)
}

func TestCompare_MatchesSortedBestFirst(t *testing.T) {
	t.Parallel()

	report, err := Compare(
		[]string{"index out of range in buffer"},
		[]string{
			"index out of range in buffers",
			"index out of range in buffer",
		},
		Options{Threshold: 60, MinLength: 3},
	)
	require.NoError(t, err)

	require.Len(t, report.MatchedLines, 1)
	matches := report.MatchedLines[0].Matches
	require.Len(t, matches, 2)
	assert.Equal(t, 100, matches[0].Score)
	assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
}

func TestSkipByLength(t *testing.T) {
	t.Parallel()

	// Strict threshold prunes wide length gaps.
	assert.True(t, skipByLength(10, 100, 80))
	assert.False(t, skipByLength(60, 100, 80))

	// Permissive thresholds stay exhaustive.
	assert.False(t, skipByLength(10, 100, 60))
}

func TestLoadCorpus(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`["one","two"]`), 0o644))
	corpus, err := LoadCorpus(good)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, corpus)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"not":"an array"}`), 0o644))
	_, err = LoadCorpus(bad)
	require.Error(t, err)
}
