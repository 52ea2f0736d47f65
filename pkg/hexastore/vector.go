package hexastore

import (
	"iter"

	"github.com/ptizoom/hexastore/internal/debug"
	"github.com/ptizoom/hexastore/internal/sortedarray"
	"github.com/ptizoom/hexastore/pkg/opt"
	"github.com/ptizoom/hexastore/pkg/xiter"
	"github.com/ptizoom/hexastore/pkg/xunsafe/layout"
)

// vectorInitialCap is the number of keys a fresh Vector's backing array
// holds before its first grow.
const vectorInitialCap = 64

// Vector is the middle level of an Index: a sorted map from node identifier
// to an owned Terminal holding the co-occurring third positions.
type Vector struct {
	children sortedarray.Array[NodeID, *Terminal]
	total    int
}

// newVector returns an empty, ready-to-use Vector.
func newVector() *Vector {
	v := &Vector{}
	v.reset()
	return v
}

// reset restores v to its freshly-allocated state, for reuse out of a pool.
func (v *Vector) reset() {
	v.children = sortedarray.Array[NodeID, *Terminal]{InitialCap: vectorInitialCap}
	v.total = 0
}

// getOrCreateTerminal returns the Terminal keyed by key, creating one (from
// the recycling pool) if it is not already present.
func (v *Vector) getOrCreateTerminal(key NodeID) *Terminal {
	found, idx := v.children.Search(key)
	if found {
		_, t := v.children.At(idx)
		return t
	}

	t := getTerminal()
	v.children.InsertAt(idx, key, t)

	return t
}

// AddTerminal installs t at key. If key already has a Terminal, the old one
// is released to the recycling pool and replaced (replacing upsert).
func (v *Vector) AddTerminal(key NodeID, t *Terminal) UpsertResult {
	found, idx := v.children.Search(key)
	if !found {
		v.children.InsertAt(idx, key, t)
		v.total += t.TriplesCount()

		return Inserted
	}

	old := v.children.SetAt(idx, t)
	v.total -= old.TriplesCount()
	v.total += t.TriplesCount()
	putTerminal(old)

	return Replaced
}

// RemoveTerminal removes key's Terminal, if present, releasing it to the
// recycling pool.
func (v *Vector) RemoveTerminal(key NodeID) RemoveResult {
	found, idx := v.children.Search(key)
	if !found {
		return NotFound
	}

	_, t := v.children.At(idx)
	v.children.RemoveAt(idx)
	v.total -= t.TriplesCount()
	putTerminal(t)

	debug.Assert(v.total >= 0, "vector: RemoveTerminal produced a negative total")

	return Removed
}

// Get looks up key's Terminal.
func (v *Vector) Get(key NodeID) opt.Option[*Terminal] {
	t, ok := v.children.Get(key)
	if !ok {
		return opt.None[*Terminal]()
	}

	return opt.Some(t)
}

// Size returns the number of keys held.
func (v *Vector) Size() int { return v.children.Len() }

// TriplesCount returns the total triple count across every owned Terminal.
func (v *Vector) TriplesCount() int { return v.total }

// adjust tracks a delta applied directly to an already-present Terminal's
// node count, so callers don't need to recompute the full sum on every leaf
// mutation.
func (v *Vector) adjust(delta int) { v.total += delta }

// MemorySize estimates the bytes occupied by this Vector's backing array,
// not including the Terminals it owns.
func (v *Vector) MemorySize() int {
	return v.children.Cap()*layout.Size[NodeID]() + layout.Size[Vector]()
}

// All returns the (key, Terminal) pairs in ascending key order.
func (v *Vector) All() iter.Seq2[NodeID, *Terminal] {
	return v.children.All()
}

// Keys returns just the keys, in ascending order.
func (v *Vector) Keys() iter.Seq[NodeID] {
	return xiter.Keys(v.All())
}

// Terminals returns just the owned Terminals, in ascending key order.
func (v *Vector) Terminals() iter.Seq[*Terminal] {
	return xiter.Values(v.All())
}
