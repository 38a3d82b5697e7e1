// Package extract recovers human-readable message patterns from C++
// source that builds strings through chained << operators or accumulator
// variables fed across multiple statements. Literal text is preserved
// verbatim; every non-literal operand collapses into a placeholder.
// Free-standing comments and string literals above a word threshold are
// collected alongside the chain patterns.
package extract

import (
	"errors"
	"os"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Extractor runs pattern extraction over one source unit at a time. It
// owns all mutable traversal state, so independent Extractor instances
// may process different units in parallel; a single instance must not be
// shared across goroutines.
type Extractor struct {
	opts   Options
	guard  *dupeGuard
	accums *accumulators
	result *Result
}

// New creates an Extractor with the given options.
func New(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// ExtractFile parses and extracts a single C++ file.
func (e *Extractor) ExtractFile(path string) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tree, err := Parse(source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	return e.extract(path, tree.RootNode(), source)
}

// Extract runs extraction over an already-parsed syntax tree. State is
// reset per call, so one Extractor can process units sequentially.
func (e *Extractor) Extract(root *sitter.Node, source []byte) (*Result, error) {
	return e.extract("", root, source)
}

func (e *Extractor) extract(file string, root *sitter.Node, source []byte) (*Result, error) {
	e.guard = newDupeGuard()
	e.accums = newAccumulators()
	e.result = newResult(file)

	if _, err := e.walk(root, source); err != nil {
		var xerr *ExtractError
		if errors.As(err, &xerr) {
			e.result.Errors = append(e.result.Errors, xerr)
		}
		return e.result, err
	}

	// Accumulators stay open until the whole unit is traversed; flush
	// them now, in registration order.
	for _, name := range e.accums.order {
		e.result.Accumulators[name] = e.accums.values[name]
	}

	return e.result, nil
}

// walk is the recursive aggregation step. It applies the node-specific
// handlers, descends into children, folds their pending contributions in
// left-to-right text order, and finalizes a chain at the first ancestor
// that is not itself a binary expression.
func (e *Extractor) walk(node *sitter.Node, source []byte) (contribution, error) {
	var own contribution

	switch node.Kind() {
	case "binary_expression":
		c, err := e.processChain(node, source)
		if err != nil {
			return contribution{}, err
		}
		if c != nil {
			own = *c
		}

	case "declaration":
		e.scanDeclaration(node, source)

	case "init_declarator":
		e.scanInitDeclarator(node, source)

	case "comment":
		e.collectComment(node, source)

	case "concatenated_string":
		if err := e.collectConcatenated(node, source); err != nil {
			return contribution{}, err
		}

	case "string_literal":
		e.collectFreeLiteral(node, source)
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		c, err := e.walk(child, source)
		if err != nil {
			return contribution{}, err
		}
		if c.pending {
			// The child subtree precedes this node's own operand in the
			// source text, so its fragment goes in front.
			own.text = c.text + own.text
			own.named = c.named
			own.ident = c.ident
			own.pending = true
		}
	}

	if node.Kind() != "binary_expression" && own.pending {
		if err := e.finalize(node, source, own); err != nil {
			return contribution{}, err
		}
		return contribution{}, nil
	}

	return own, nil
}

// finalize commits a completed chain: named sinks merge into their
// accumulator binding, anonymous sinks become patterns when they meet the
// word threshold and are dropped silently otherwise.
func (e *Extractor) finalize(node *sitter.Node, source []byte, c contribution) error {
	if c.named {
		if !e.accums.has(c.ident) {
			if e.opts.StrictAccumulators {
				return newNodeError(ErrUnresolvedAccumulator, node, source,
					"chain targets %q which was never declared as an accumulator", c.ident)
			}
			e.accums.register(c.ident)
		}
		e.accums.extend(c.ident, c.text)
		return nil
	}

	if wordCount(c.text) >= e.opts.MinPatternWords {
		e.result.addPattern(c.text)
	}
	return nil
}

// collectComment records a free-standing comment. The comment that opens
// the file is skipped as a license header.
func (e *Extractor) collectComment(node *sitter.Node, source []byte) {
	if node.StartByte() == 0 {
		return
	}
	text := normalizeComment(nodeText(node, source))
	if wordCount(text) < e.opts.MinWords {
		return
	}
	e.result.addComment(text)
}

// collectFreeLiteral records a string literal that no chain consumed.
func (e *Extractor) collectFreeLiteral(node *sitter.Node, source []byte) {
	text := normalizeString(nodeText(node, source))
	if wordCount(text) < e.opts.MinWords {
		return
	}
	if e.guard.Seen(node, source) {
		return
	}
	e.guard.Mark(node, source)
	e.result.addLiteral(text)
}

// collectConcatenated records a free-standing adjacent-literal
// concatenation as a whole. Consumption is decided by the concatenation
// node's own span, not its children's, so a chain-consumed concatenation
// never reappears here.
func (e *Extractor) collectConcatenated(node *sitter.Node, source []byte) error {
	if e.guard.Seen(node, source) {
		return nil
	}
	e.guard.Mark(node, source)

	text, err := e.normalizeConcatenated(node, source)
	if err != nil {
		return err
	}
	if wordCount(text) < e.opts.MinWords {
		return nil
	}
	e.result.addLiteral(text)
	return nil
}
