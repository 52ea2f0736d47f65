//go:build go1.23

// Package sortedarray implements a dense, key-sorted dynamic array with
// geometric growth and hysteresis-based shrinking.
//
// It is the shared primitive behind every level of a hexastore index:
// instantiated with V = struct{} it behaves as a sorted set, and with an
// owned pointer as V it behaves as a sorted map from key to child.
package sortedarray

import (
	"cmp"
	"iter"

	"github.com/ptizoom/hexastore/internal/debug"
)

// entry is one (key, value) pair held by an Array.
type entry[K cmp.Ordered, V any] struct {
	key K
	val V
}

// Array is a slice of entries kept sorted ascending by key, with no
// duplicate keys.
//
// The zero value is an empty array with the given InitialCap; InitialCap
// must be set before the first insertion and is never reduced below.
type Array[K cmp.Ordered, V any] struct {
	entries    []entry[K, V]
	InitialCap int
}

// New returns an empty Array whose backing storage starts at initialCap and
// never shrinks below it.
func New[K cmp.Ordered, V any](initialCap int) *Array[K, V] {
	return &Array[K, V]{InitialCap: initialCap}
}

// Len returns the number of entries.
func (a *Array[K, V]) Len() int { return len(a.entries) }

// Cap returns the current backing capacity.
func (a *Array[K, V]) Cap() int { return cap(a.entries) }

// At returns the key and value at position i.
func (a *Array[K, V]) At(i int) (K, V) {
	e := a.entries[i]
	return e.key, e.val
}

// Search performs a binary search for key, returning whether it was found
// and, either way, the index at which it is (or would be) located.
func (a *Array[K, V]) Search(key K) (found bool, index int) {
	lo, hi := 0, len(a.entries)

	for lo < hi {
		mid := int(uint(lo+hi) >> 1)

		switch cmp.Compare(a.entries[mid].key, key) {
		case -1:
			lo = mid + 1
		case 0:
			return true, mid
		default:
			hi = mid
		}
	}

	return false, lo
}

// Get looks up key, returning its value and whether it was present.
func (a *Array[K, V]) Get(key K) (V, bool) {
	found, idx := a.Search(key)
	if !found {
		var zero V
		return zero, false
	}

	return a.entries[idx].val, true
}

// InsertAt inserts key/value at index, which must have been produced by a
// prior Search miss on this array. Growing happens before the shift so the
// insert never observes a half-grown backing array.
func (a *Array[K, V]) InsertAt(index int, key K, val V) {
	a.growIfFull()

	a.entries = append(a.entries, entry[K, V]{})
	copy(a.entries[index+1:], a.entries[index:])
	a.entries[index] = entry[K, V]{key, val}

	debug.Assert(a.isSorted(), "sortedarray: InsertAt broke ordering at index %d", index)
}

// SetAt overwrites the value at an index already known (via Search) to hold
// key, returning the previous value.
func (a *Array[K, V]) SetAt(index int, val V) (old V) {
	old = a.entries[index].val
	a.entries[index].val = val

	return old
}

// RemoveAt removes and returns the entry at index, shrinking the backing
// array if occupancy has fallen low enough.
func (a *Array[K, V]) RemoveAt(index int) (K, V) {
	removed := a.entries[index]

	copy(a.entries[index:], a.entries[index+1:])
	a.entries = a.entries[:len(a.entries)-1]

	a.shrinkIfSparse()

	return removed.key, removed.val
}

// All returns the entries in ascending key order.
func (a *Array[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range a.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// growIfFull doubles capacity (or seeds it at InitialCap) when the next
// insert would otherwise reallocate mid-shift.
func (a *Array[K, V]) growIfFull() {
	if len(a.entries) < cap(a.entries) {
		return
	}

	newCap := cap(a.entries) * 2
	if newCap < a.InitialCap {
		newCap = a.InitialCap
	}

	grown := make([]entry[K, V], len(a.entries), newCap)
	copy(grown, a.entries)
	a.entries = grown

	debug.Log(nil, "grow", "len=%d newCap=%d", len(a.entries), newCap)
}

// shrinkIfSparse halves capacity when occupancy drops to a quarter or less,
// never going below InitialCap, with a gap between the grow and shrink
// thresholds so repeated insert/remove pairs near a boundary don't thrash.
func (a *Array[K, V]) shrinkIfSparse() {
	c := cap(a.entries)
	if c <= a.InitialCap || len(a.entries) > c/4 {
		return
	}

	newCap := c / 2
	if newCap < a.InitialCap {
		newCap = a.InitialCap
	}

	shrunk := make([]entry[K, V], len(a.entries), newCap)
	copy(shrunk, a.entries)
	a.entries = shrunk

	debug.Log(nil, "shrink", "len=%d newCap=%d", len(a.entries), newCap)
}

func (a *Array[K, V]) isSorted() bool {
	for i := 1; i < len(a.entries); i++ {
		if cmp.Compare(a.entries[i-1].key, a.entries[i].key) >= 0 {
			return false
		}
	}

	return true
}
