package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Literal Normalizer:
// - Quoted strings lose their quotes, escapes pass through untouched
// - Char literals lose their single quotes
// - Concatenated strings flatten child contents in order; macro
//   identifiers become %s; unexpected child kinds fail
// - Line and block comments lose delimiters and per-line markers

func TestNormalizeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", normalizeString(`"hello world"`))
	assert.Equal(t, `path\n`, normalizeString(`"path\n"`))
	assert.Equal(t, "", normalizeString(`""`))
}

func TestNormalizeChar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", normalizeChar(`'x'`))
	assert.Equal(t, `\n`, normalizeChar(`'\n'`))
}

func TestNormalizeConcatenated(t *testing.T) {
	t.Parallel()

	tree, source := parseSource(t, `
void f() {
    errmsg("first half of the message "
           "second half of the message");
}
`)
	node := findFirst(tree.RootNode(), "concatenated_string")
	require.NotNil(t, node)

	e := New(DefaultOptions())
	e.guard = newDupeGuard()

	got, err := e.normalizeConcatenated(node, source)
	require.NoError(t, err)
	assert.Equal(t, "first half of the message second half of the message", got)
}

func TestNormalizeConcatenated_MacroBecomesPlaceholder(t *testing.T) {
	t.Parallel()

	tree, source := parseSource(t, `
void f() {
    errmsg("expected value " PRETTY_NAME " but found none");
}
`)
	node := findFirst(tree.RootNode(), "concatenated_string")
	require.NotNil(t, node)

	e := New(DefaultOptions())
	e.guard = newDupeGuard()

	got, err := e.normalizeConcatenated(node, source)
	require.NoError(t, err)
	assert.Equal(t, "expected value %s but found none", got)
}

func TestNormalizeComment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "single line note", normalizeComment("// single line note"))
	assert.Equal(t, "inline block", normalizeComment("/* inline block */"))
	assert.Equal(t,
		"first line second line",
		normalizeComment("/*\n * first line\n * second line\n */"))
}
