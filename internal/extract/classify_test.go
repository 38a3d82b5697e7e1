package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Test Plan for the Right-Operand Classifier:
// - Every kind in the dispatch table yields its documented contribution
// - Sentinel identifiers (endl, std::endl) yield "" instead of %s
// - A second classification of the same literal span fails the run
// - Kinds outside the table fail with kind, text and position

// findFirst returns the first node of the given kind in document order.
func findFirst(node *sitter.Node, kind string) *sitter.Node {
	if node.Kind() == kind {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := findFirst(node.Child(uint(i)), kind); found != nil {
			return found
		}
	}
	return nil
}

// classifyIn parses src, takes the right operand of the first binary
// expression, and classifies it with a fresh extractor. The expected
// kind is asserted so grammar drift fails loudly.
func classifyIn(t *testing.T, src, kind string) (string, error) {
	t.Helper()
	tree, source := parseSource(t, src)
	binary := findFirst(tree.RootNode(), "binary_expression")
	require.NotNil(t, binary, "no binary expression in %q", src)

	operand := binary.Child(binary.ChildCount() - 1)
	require.Equal(t, kind, operand.Kind())

	e := New(DefaultOptions())
	e.guard = newDupeGuard()
	return e.classifyOperand(operand, source)
}

func TestClassify_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		kind string
		want string
	}{
		{"string literal", `void f() { s() << "hello there world"; }`, "string_literal", "hello there world"},
		{"char literal", `void f() { s() << 'x'; }`, "char_literal", "x"},
		{"number literal", `void f() { s() << 42; }`, "number_literal", "%d"},
		{"true", `void f() { s() << true; }`, "true", "1"},
		{"false", `void f() { s() << false; }`, "false", "0"},
		{"identifier", `void f() { s() << status; }`, "identifier", "%s"},
		{"qualified identifier", `void f() { s() << Limits::kMaxDepth; }`, "qualified_identifier", "%s"},
		{"call expression", `void f() { s() << name(); }`, "call_expression", "%s"},
		{"field expression", `void f() { s() << obj.field; }`, "field_expression", "%s"},
		{"subscript expression", `void f() { s() << items[0]; }`, "subscript_expression", "%s"},
		{"pointer expression", `void f() { s() << *ptr; }`, "pointer_expression", "%s"},
		{"parenthesized expression", `void f() { s() << (a + b); }`, "parenthesized_expression", "%s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := classifyIn(t, tt.src, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_Sentinels(t *testing.T) {
	t.Parallel()

	got, err := classifyIn(t, `void f() { out << endl; }`, "identifier")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = classifyIn(t, `void f() { out << std::endl; }`, "qualified_identifier")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestClassify_DuplicateLiteralVisitFails(t *testing.T) {
	t.Parallel()

	tree, source := parseSource(t, `void f() { s() << "hello there world"; }`)
	node := findFirst(tree.RootNode(), "string_literal")
	require.NotNil(t, node)

	e := New(DefaultOptions())
	e.guard = newDupeGuard()

	_, err := e.classifyOperand(node, source)
	require.NoError(t, err)

	_, err = e.classifyOperand(node, source)
	require.Error(t, err)

	var xerr *ExtractError
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, ErrDuplicateLiteralVisit, xerr.Kind)
}

func TestClassify_UnknownKindFails(t *testing.T) {
	t.Parallel()

	_, err := classifyIn(t, `void f() { s() << new Widget(); }`, "new_expression")
	require.Error(t, err)

	var xerr *ExtractError
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, ErrUnsupportedNodeKind, xerr.Kind)
	assert.Equal(t, "new_expression", xerr.NodeKind)
	assert.Equal(t, "new Widget()", xerr.NodeText)
	assert.NotZero(t, xerr.Line)
	assert.NotZero(t, xerr.Column)
}
