package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Test Plan for the Duplicate Guard:
// - Fresh spans are unseen, marked spans are seen
// - Consume succeeds once and fails on the second visit of the same span
// - Identical literal text at different spans stays distinct

func TestGuard_MarkAndSeen(t *testing.T) {
	t.Parallel()

	tree, source := parseSource(t, `const char* s = "some message text here";`)
	node := findFirst(tree.RootNode(), "string_literal")
	require.NotNil(t, node)

	g := newDupeGuard()
	assert.False(t, g.Seen(node, source))

	g.Mark(node, source)
	assert.True(t, g.Seen(node, source))
}

func TestGuard_ConsumeTwiceFails(t *testing.T) {
	t.Parallel()

	tree, source := parseSource(t, `const char* s = "some message text here";`)
	node := findFirst(tree.RootNode(), "string_literal")
	require.NotNil(t, node)

	g := newDupeGuard()
	require.Nil(t, g.Consume(node, source))

	err := g.Consume(node, source)
	require.NotNil(t, err)
	assert.Equal(t, ErrDuplicateLiteralVisit, err.Kind)
}

func TestGuard_SameTextDifferentSpans(t *testing.T) {
	t.Parallel()

	tree, source := parseSource(t, `
const char* a = "identical message text here";
const char* b = "identical message text here";
`)
	first := findFirst(tree.RootNode(), "string_literal")
	require.NotNil(t, first)

	second := findAfter(tree.RootNode(), "string_literal", first.EndByte())
	require.NotNil(t, second)

	g := newDupeGuard()
	require.Nil(t, g.Consume(first, source))
	require.Nil(t, g.Consume(second, source),
		"identical text at a different span is a distinct literal")
}

// findAfter returns the first node of the given kind starting at or
// beyond the byte offset.
func findAfter(node *sitter.Node, kind string, offset uint) *sitter.Node {
	if node.Kind() == kind && node.StartByte() >= offset {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := findAfter(node.Child(uint(i)), kind, offset); found != nil {
			return found
		}
	}
	return nil
}
