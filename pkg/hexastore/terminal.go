package hexastore

import (
	"iter"

	"github.com/ptizoom/hexastore/internal/debug"
	"github.com/ptizoom/hexastore/internal/sortedarray"
	"github.com/ptizoom/hexastore/pkg/xunsafe/layout"
)

// terminalInitialCap is the number of elements a fresh Terminal's backing
// array holds before its first grow.
const terminalInitialCap = 32

// Terminal is the innermost level of an Index: a sorted, duplicate-free set
// of node identifiers that co-occur with a fixed (a, b) key pair.
type Terminal struct {
	nodes sortedarray.Array[NodeID, struct{}]
}

// newTerminal returns an empty, ready-to-use Terminal.
func newTerminal() *Terminal {
	t := &Terminal{}
	t.reset()
	return t
}

// reset restores t to its freshly-allocated state, for reuse out of a pool.
func (t *Terminal) reset() {
	t.nodes = sortedarray.Array[NodeID, struct{}]{InitialCap: terminalInitialCap}
}

// AddNode inserts n if absent. Returns Existed without modifying t if n was
// already present.
func (t *Terminal) AddNode(n NodeID) AddResult {
	found, idx := t.nodes.Search(n)
	if found {
		return Existed
	}

	t.nodes.InsertAt(idx, n, struct{}{})

	debug.Assert(t.Size() > 0, "terminal: AddNode left an empty terminal")

	return Added
}

// RemoveNode removes n if present. Returns NotFound without modifying t
// otherwise.
func (t *Terminal) RemoveNode(n NodeID) RemoveResult {
	found, idx := t.nodes.Search(n)
	if !found {
		return NotFound
	}

	t.nodes.RemoveAt(idx)

	return Removed
}

// BinarySearch reports whether n is held and the index at which it is (or
// would be inserted).
func (t *Terminal) BinarySearch(n NodeID) (bool, int) { return t.nodes.Search(n) }

// Size returns the number of node identifiers held.
func (t *Terminal) Size() int { return t.nodes.Len() }

// TriplesCount is Size, exposed for symmetry with Vector and Head.
func (t *Terminal) TriplesCount() int { return t.Size() }

// MemorySize estimates the bytes occupied by this Terminal's backing array.
func (t *Terminal) MemorySize() int {
	return t.nodes.Cap()*layout.Size[NodeID]() + layout.Size[Terminal]()
}

// All returns the held node identifiers in ascending order.
func (t *Terminal) All() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for n := range t.nodes.All() {
			if !yield(n) {
				return
			}
		}
	}
}
