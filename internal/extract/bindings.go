package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// accumulators tracks variable-name to accumulated-fragment bindings for
// the duration of one extraction run. Bindings are never deleted early:
// later statements in the same scope keep extending them, and the driver
// flushes them into the result when the traversal completes.
type accumulators struct {
	values map[string]string
	order  []string
}

func newAccumulators() *accumulators {
	return &accumulators{values: map[string]string{}}
}

func (a *accumulators) register(name string) {
	if _, ok := a.values[name]; ok {
		return
	}
	a.values[name] = ""
	a.order = append(a.order, name)
}

func (a *accumulators) has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// extend appends a fragment to the binding. The walker supplies fragments
// already in left-to-right textual order.
func (a *accumulators) extend(name, fragment string) {
	a.values[name] = a.values[name] + fragment
}

// scanDeclaration registers accumulator variables declared with an
// explicit builder type, e.g. `StringBuilder sb;`.
func (e *Extractor) scanDeclaration(node *sitter.Node, source []byte) {
	var name string
	var isBuilder bool
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		switch child.Kind() {
		case "identifier":
			name = nodeText(child, source)
		case "type_identifier":
			if containsAnySubstring(nodeText(child, source), e.opts.BuilderTypes) {
				isBuilder = true
			}
		}
	}
	if isBuilder && name != "" {
		e.accums.register(name)
	}
}

// scanInitDeclarator registers accumulator variables initialized from a
// builder constructor call, e.g. `auto sb = StringBuilder();`.
func (e *Extractor) scanInitDeclarator(node *sitter.Node, source []byte) {
	var name string
	var sawEquals bool
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		switch child.Kind() {
		case "identifier":
			name = nodeText(child, source)
		case "=":
			sawEquals = true
		case "call_expression", "parenthesized_expression":
			if !containsAnySubstring(nodeText(child, source), e.opts.BuilderTypes) {
				continue
			}
			if sawEquals && name != "" {
				e.accums.register(name)
			}
			return
		}
	}
}
