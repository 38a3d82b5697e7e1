package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// classifyOperand maps the right operand of a << expression to its
// pattern contribution. The kind table is closed: literals contribute
// their content, numerics and booleans contribute fixed markers, opaque
// expressions contribute a %s placeholder, and sentinel end-of-line
// identifiers contribute the empty string. Any kind outside the table
// fails with the exact kind, text and position; defaulting to %s would
// silently corrupt pattern fidelity whenever the grammar grows a shape
// this table does not know.
func (e *Extractor) classifyOperand(node *sitter.Node, source []byte) (string, error) {
	text := nodeText(node, source)

	switch node.Kind() {
	case "string_literal":
		if err := e.guard.Consume(node, source); err != nil {
			return "", err
		}
		return normalizeString(text), nil

	case "char_literal":
		return normalizeChar(text), nil

	case "concatenated_string":
		// The concatenation node's own span is recorded so the standalone
		// literal pass knows the whole node was consumed here.
		e.guard.Mark(node, source)
		return e.normalizeConcatenated(node, source)

	case "user_defined_literal":
		return e.normalizeUserLiteral(node, source)

	case "number_literal":
		return "%d", nil

	case "true":
		return "1", nil

	case "false":
		return "0", nil

	case "identifier", "qualified_identifier":
		if contains(e.opts.Sentinels, text) {
			return "", nil
		}
		return "%s", nil

	case "call_expression",
		"field_expression",
		"subscript_expression",
		"pointer_expression",
		"binary_expression":
		// Arguments and nested chains are not inspected here; a nested
		// binary expression is walked and finalized on its own.
		return "%s", nil

	case "parenthesized_expression":
		// String literals inside the parentheses are not unpacked.
		return "%s", nil

	default:
		return "", newNodeError(ErrUnsupportedNodeKind, node, source,
			"unsupported node kind %q as right operand of <<", node.Kind())
	}
}
