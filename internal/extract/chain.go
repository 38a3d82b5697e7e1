package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// contribution is the tagged result of one traversal step: either nothing,
// or a pending chain fragment that a parent must finalize.
type contribution struct {
	// pending is true when the fragment belongs to a recognized sink chain
	// and still needs to be finalized by an ancestor.
	pending bool

	// named is true when the sink is an accumulator variable; ident holds
	// its name. Anonymous sinks (builder calls, output streams) leave it
	// false.
	named bool
	ident string

	// text is the accumulated pattern fragment, in left-to-right source
	// order.
	text string
}

// processChain examines a binary_expression node. It returns nil when the
// node is not a << chain (plain arithmetic shifts included), a
// contribution when it is, and an error when the chain is malformed or
// the right operand cannot be classified.
func (e *Extractor) processChain(node *sitter.Node, source []byte) (*contribution, error) {
	childCount := int(node.ChildCount())
	if childCount < 3 {
		return nil, nil
	}

	left := node.Child(0)
	operator := node.Child(1)
	var right *sitter.Node

	if childCount == 3 {
		right = node.Child(2)
	} else {
		// Comments interspersed between operands are skipped; at most one
		// real right-hand operand is tolerated.
		for i := 2; i < childCount; i++ {
			child := node.Child(uint(i))
			if child.Kind() == "comment" {
				continue
			}
			if right != nil {
				return nil, newNodeError(ErrMalformedChain, node, source,
					"expression has more than one non-comment right operand")
			}
			right = child
		}
		if right == nil {
			return nil, nil
		}
	}

	if strings.TrimSpace(nodeText(operator, source)) != "<<" {
		return nil, nil
	}

	value, err := e.classifyOperand(right, source)
	if err != nil {
		return nil, err
	}

	c := &contribution{text: value}

	switch left.Kind() {
	case "call_expression":
		if contains(e.opts.BuilderCalls, nodeText(left, source)) {
			c.pending = true
		}
	case "qualified_identifier":
		if contains(e.opts.SinkStreams, nodeText(left, source)) {
			c.pending = true
		}
	case "identifier":
		// The chain feeds a named variable; the value accumulates under
		// that name.
		c.pending = true
		c.named = true
		c.ident = nodeText(left, source)
	}

	return c, nil
}
