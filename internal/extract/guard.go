package extract

import (
	"github.com/bits-and-blooms/bloom/v3"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

const (
	guardCapacity  = 100000
	guardErrorRate = 0.001
)

// dupeGuard is a probabilistic membership set over literal byte spans. It
// detects a literal node being consumed a second time through an
// independent traversal path, which always indicates a walker defect. A
// bloom false positive can only surface as a spurious duplicate report,
// never as a missed one.
type dupeGuard struct {
	filter *bloom.BloomFilter
}

func newDupeGuard() *dupeGuard {
	return &dupeGuard{
		filter: bloom.NewWithEstimates(guardCapacity, guardErrorRate),
	}
}

// Seen reports whether the node's span was already recorded.
func (g *dupeGuard) Seen(node *sitter.Node, source []byte) bool {
	return g.filter.TestString(spanKey(node, source))
}

// Mark records the node's span as consumed.
func (g *dupeGuard) Mark(node *sitter.Node, source []byte) {
	g.filter.AddString(spanKey(node, source))
}

// Consume records the node's span, failing if it was already recorded.
func (g *dupeGuard) Consume(node *sitter.Node, source []byte) *ExtractError {
	if g.Seen(node, source) {
		return newNodeError(ErrDuplicateLiteralVisit, node, source,
			"string literal already visited; the traversal reached it twice")
	}
	g.Mark(node, source)
	return nil
}
