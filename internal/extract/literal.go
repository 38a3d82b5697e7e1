package extract

import (
	"regexp"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// normalizeString strips the surrounding double quotes from a string
// literal. Escape sequences are passed through untouched; unescaping is a
// downstream concern.
func normalizeString(raw string) string {
	return strings.Trim(raw, `"`)
}

// normalizeChar strips the surrounding single quotes from a char literal.
func normalizeChar(raw string) string {
	return strings.Trim(raw, `'`)
}

// normalizeConcatenated flattens an adjacent-literal concatenation node
// into a single string. Each string literal child is consumed through the
// duplicate guard; identifiers and parse errors hide macros tree-sitter
// cannot see and become placeholders; comments are skipped. Any other
// child kind fails.
func (e *Extractor) normalizeConcatenated(node *sitter.Node, source []byte) (string, error) {
	var sb strings.Builder
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		switch child.Kind() {
		case "string_literal":
			if err := e.guard.Consume(child, source); err != nil {
				return "", err
			}
			sb.WriteString(normalizeString(nodeText(child, source)))
		case "ERROR", "identifier":
			sb.WriteString("%s")
		case "comment":
			continue
		default:
			return "", newNodeError(ErrMalformedChain, child, source,
				"unsupported child kind %q inside concatenated string, expected string_literal", child.Kind())
		}
	}
	return sb.String(), nil
}

// normalizeUserLiteral flattens a user-defined literal, discarding the
// suffix token.
func (e *Extractor) normalizeUserLiteral(node *sitter.Node, source []byte) (string, error) {
	var sb strings.Builder
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		switch child.Kind() {
		case "string_literal":
			if err := e.guard.Consume(child, source); err != nil {
				return "", err
			}
			sb.WriteString(normalizeString(nodeText(child, source)))
		case "literal_suffix":
			continue
		default:
			return "", newNodeError(ErrMalformedChain, child, source,
				"unsupported child kind %q inside user-defined literal, expected string_literal", child.Kind())
		}
	}
	return sb.String(), nil
}

var blockCommentLine = regexp.MustCompile(`^\s*\* ?`)

// normalizeComment strips comment delimiters and per-line leading markers,
// joining multi-line block comments with single spaces.
func normalizeComment(raw string) string {
	if strings.HasPrefix(raw, "/*") {
		inner := strings.TrimSuffix(strings.TrimPrefix(raw, "/*"), "*/")
		var parts []string
		for _, line := range strings.Split(inner, "\n") {
			line = strings.TrimSpace(blockCommentLine.ReplaceAllString(line, ""))
			if line != "" {
				parts = append(parts, line)
			}
		}
		return strings.Join(parts, " ")
	}
	if strings.HasPrefix(raw, "//") {
		return strings.TrimSpace(strings.TrimPrefix(raw, "//"))
	}
	return strings.TrimSpace(raw)
}
