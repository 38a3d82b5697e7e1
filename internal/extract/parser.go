package extract

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
)

// cppLanguage is shared across parses; tree-sitter languages are
// immutable.
var cppLanguage = sitter.NewLanguage(cpp.Language())

// Parse builds a C++ syntax tree for the given source. The caller owns
// the returned tree and must Close it.
func Parse(source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(cppLanguage)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter failed to parse source (%d bytes)", len(source))
	}
	return tree, nil
}
