package extract

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ErrorKind classifies extraction failures.
type ErrorKind string

const (
	// ErrUnsupportedNodeKind means the right-operand classifier met a node
	// kind absent from its dispatch table.
	ErrUnsupportedNodeKind ErrorKind = "unsupported_node_kind"

	// ErrMalformedChain means a << expression had an unexpected shape,
	// e.g. more than one non-comment trailing operand.
	ErrMalformedChain ErrorKind = "malformed_chain"

	// ErrDuplicateLiteralVisit means a string literal span was consumed
	// twice through independent traversal paths. This is a walker defect,
	// not a source-content problem, so it is fatal to the whole run.
	ErrDuplicateLiteralVisit ErrorKind = "duplicate_literal_visit"

	// ErrUnresolvedAccumulator means a chain targeted a named variable that
	// was never registered as an accumulator declaration.
	ErrUnresolvedAccumulator ErrorKind = "unresolved_accumulator"
)

// ExtractError is a structured extraction failure tied to a syntax node.
type ExtractError struct {
	Kind     ErrorKind `json:"kind"`
	NodeKind string    `json:"node_kind"`
	NodeText string    `json:"node_text"`
	Line     int       `json:"line"`
	Column   int       `json:"column"`
	Message  string    `json:"message"`
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d: %s (node kind %q, text %q)",
		e.Kind, e.Line, e.Column, e.Message, e.NodeKind, e.NodeText)
}

// newNodeError builds an ExtractError positioned at the given node.
func newNodeError(kind ErrorKind, node *sitter.Node, source []byte, format string, args ...any) *ExtractError {
	pos := node.StartPosition()
	return &ExtractError{
		Kind:     kind,
		NodeKind: node.Kind(),
		NodeText: nodeText(node, source),
		Line:     int(pos.Row) + 1,
		Column:   int(pos.Column) + 1,
		Message:  fmt.Sprintf(format, args...),
	}
}
