package hexastore

import (
	"io"

	"github.com/ptizoom/hexastore/internal/debug"
	"github.com/ptizoom/hexastore/pkg/res"
)

// Index is a Head plus a fixed Ordering: one permutation-specific slice of a
// full hexastore. It owns all storage reachable from its Head.
type Index struct {
	ordering Ordering
	head     *Head
}

// NewIndex constructs an empty Index for the given ordering, or reports
// ErrInvalidOrder if order is not one of the six defined permutations.
func NewIndex(order Ordering) res.Result[*Index] {
	if !order.valid() {
		return res.Err[*Index](&InvalidOrderError{Order: order})
	}

	return res.Ok(&Index{
		ordering: order,
		head:     newHead(),
	})
}

// Ordering returns the permutation this Index stores triples by.
func (idx *Index) Ordering() Ordering { return idx.ordering }

// AddTriple inserts (s, p, o), creating any missing Vector/Terminal along
// the way. Returns Existed without modifying the Index if the triple was
// already present.
func (idx *Index) AddTriple(s, p, o NodeID) AddResult {
	a, b, c := idx.ordering.project(s, p, o)

	v := idx.head.getOrCreateVector(a)
	t := v.getOrCreateTerminal(b)

	result := t.AddNode(c)
	if result == Added {
		v.adjust(1)
		idx.head.adjust(1)
	}

	debug.Log(nil, "AddTriple", "(%d,%d,%d) -> %v", s, p, o, result)

	return result
}

// RemoveTriple removes (s, p, o) if present. Removing the last node of a
// Terminal removes that Terminal's entry from its Vector (cascading
// cleanup); removing the last Vector entry of a Head removes that entry in
// turn. The Head itself persists empty.
func (idx *Index) RemoveTriple(s, p, o NodeID) RemoveResult {
	a, b, c := idx.ordering.project(s, p, o)

	vOpt := idx.head.Get(a)
	if vOpt.IsNone() {
		return NotFound
	}
	v := vOpt.Unwrap()

	tOpt := v.Get(b)
	if tOpt.IsNone() {
		return NotFound
	}
	t := tOpt.Unwrap()

	if t.RemoveNode(c) == NotFound {
		return NotFound
	}

	v.adjust(-1)
	idx.head.adjust(-1)

	if t.Size() == 0 {
		v.RemoveTerminal(b)

		if v.Size() == 0 {
			idx.head.RemoveVector(a)
		}
	}

	debug.Log(nil, "RemoveTriple", "(%d,%d,%d)", s, p, o)

	return Removed
}

// TriplesCount returns the number of triples currently stored.
func (idx *Index) TriplesCount() int { return idx.head.TriplesCount() }

// Iter returns a cursor over every stored triple, in the order dictated by
// this Index's ordering. The returned Iterator must be closed.
func (idx *Index) Iter() *Iterator {
	return newIterator(idx)
}

// Debug writes a human-readable dump of the Index's structure to w. The
// format is not part of this package's contract and may change.
func (idx *Index) Debug(w io.Writer) {
	for a, v := range idx.head.All() {
		_, _ = io.WriteString(w, debug.Dict(a, "keys", v.Size(), "triples", v.TriplesCount()).String())
		_, _ = io.WriteString(w, "\n")

		for b, t := range v.All() {
			_, _ = io.WriteString(w, "  ")
			_, _ = io.WriteString(w, debug.Dict(b, "nodes", t.Size()).String())
			_, _ = io.WriteString(w, "\n")
		}
	}
}
