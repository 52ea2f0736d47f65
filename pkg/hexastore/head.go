package hexastore

import (
	"iter"

	"github.com/ptizoom/hexastore/internal/debug"
	"github.com/ptizoom/hexastore/internal/sortedarray"
	"github.com/ptizoom/hexastore/pkg/opt"
	"github.com/ptizoom/hexastore/pkg/xiter"
	"github.com/ptizoom/hexastore/pkg/xunsafe/layout"
)

// headInitialCap is the number of keys a fresh Head's backing array holds
// before its first grow. It is the largest of the three levels, reflecting
// the expected fan-out of an index's outermost key.
const headInitialCap = 4096

// Head is the outermost level of an Index: a sorted map from node identifier
// to an owned Vector. Its contract mirrors Vector's, one level up.
type Head struct {
	children sortedarray.Array[NodeID, *Vector]
	total    int
}

// newHead returns an empty, ready-to-use Head.
func newHead() *Head {
	h := &Head{}
	h.children = sortedarray.Array[NodeID, *Vector]{InitialCap: headInitialCap}

	return h
}

// getOrCreateVector returns the Vector keyed by key, creating one (from the
// recycling pool) if it is not already present.
func (h *Head) getOrCreateVector(key NodeID) *Vector {
	found, idx := h.children.Search(key)
	if found {
		_, v := h.children.At(idx)
		return v
	}

	v := getVector()
	h.children.InsertAt(idx, key, v)

	return v
}

// AddVector installs v at key. If key already has a Vector, the old one is
// released to the recycling pool and replaced (replacing upsert).
func (h *Head) AddVector(key NodeID, v *Vector) UpsertResult {
	found, idx := h.children.Search(key)
	if !found {
		h.children.InsertAt(idx, key, v)
		h.total += v.TriplesCount()

		return Inserted
	}

	old := h.children.SetAt(idx, v)
	h.total -= old.TriplesCount()
	h.total += v.TriplesCount()
	putVector(old)

	return Replaced
}

// RemoveVector removes key's Vector, if present, releasing it to the
// recycling pool.
func (h *Head) RemoveVector(key NodeID) RemoveResult {
	found, idx := h.children.Search(key)
	if !found {
		return NotFound
	}

	_, v := h.children.At(idx)
	h.children.RemoveAt(idx)
	h.total -= v.TriplesCount()
	putVector(v)

	debug.Assert(h.total >= 0, "head: RemoveVector produced a negative total")

	return Removed
}

// Get looks up key's Vector.
func (h *Head) Get(key NodeID) opt.Option[*Vector] {
	v, ok := h.children.Get(key)
	if !ok {
		return opt.None[*Vector]()
	}

	return opt.Some(v)
}

// Size returns the number of keys held.
func (h *Head) Size() int { return h.children.Len() }

// TriplesCount returns the total triple count across every owned Vector.
func (h *Head) TriplesCount() int { return h.total }

// adjust tracks a delta applied to a node count somewhere beneath an
// already-present Vector, without recomputing the full sum.
func (h *Head) adjust(delta int) { h.total += delta }

// MemorySize estimates the bytes occupied by this Head's backing array, not
// including the Vectors it owns.
func (h *Head) MemorySize() int {
	return h.children.Cap()*layout.Size[NodeID]() + layout.Size[Head]()
}

// All returns the (key, Vector) pairs in ascending key order.
func (h *Head) All() iter.Seq2[NodeID, *Vector] {
	return h.children.All()
}

// Keys returns just the keys, in ascending order.
func (h *Head) Keys() iter.Seq[NodeID] {
	return xiter.Keys(h.All())
}

// Vectors returns just the owned Vectors, in ascending key order.
func (h *Head) Vectors() iter.Seq[*Vector] {
	return xiter.Values(h.All())
}
