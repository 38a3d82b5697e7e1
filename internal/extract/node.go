package extract

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// nodeText extracts the verbatim source text covered by a node's byte span.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// spanKey uniquely identifies a node occurrence by byte span and text.
// It is the duplicate-guard membership key.
func spanKey(node *sitter.Node, source []byte) string {
	return fmt.Sprintf("%d_%d_%s", node.StartByte(), node.EndByte(), nodeText(node, source))
}

// wordCount returns the number of whitespace-separated words in s.
func wordCount(s string) int {
	return len(strings.Fields(s))
}
