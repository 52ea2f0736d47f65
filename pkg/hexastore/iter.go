//go:build go1.23

package hexastore

import "iter"

// Iterator is a cursor over every triple stored in an Index, yielded in the
// order dictated by that Index's ordering. It is built by chaining
// iter.Pull/iter.Pull2 cursors over the Head, Vector, and Terminal levels,
// so the same push-style iterators used for level-local traversal also
// drive this imperative cursor.
//
// An Iterator must be closed once the caller is done with it, and is not
// valid to use across a concurrent mutation of the Index it was obtained
// from.
type Iterator struct {
	ordering Ordering

	headNext func() (NodeID, *Vector, bool)
	headStop func()

	vecNext func() (NodeID, *Terminal, bool)
	vecStop func()

	termNext func() (NodeID, bool)
	termStop func()

	a, b    NodeID
	current Triple
	ok      bool
}

// newIterator builds an Iterator positioned at idx's first triple, if any.
func newIterator(idx *Index) *Iterator {
	it := &Iterator{ordering: idx.ordering}
	it.headNext, it.headStop = iter.Pull2(idx.head.All())
	it.advance()

	return it
}

// advance pulls the level cursors forward until a triple is found, opening
// child cursors as needed and closing exhausted ones, skipping over any
// empty Vector/Terminal encountered along the way.
func (it *Iterator) advance() {
	for {
		if it.termNext != nil {
			if c, ok := it.termNext(); ok {
				s, p, o := it.ordering.unproject(it.a, it.b, c)
				it.current = NewTriple(s, p, o)
				it.ok = true

				return
			}

			it.termStop()
			it.termNext, it.termStop = nil, nil
		}

		if it.vecNext != nil {
			if b, t, ok := it.vecNext(); ok {
				it.b = b
				it.termNext, it.termStop = iter.Pull(t.All())

				continue
			}

			it.vecStop()
			it.vecNext, it.vecStop = nil, nil
		}

		if it.headNext != nil {
			if a, v, ok := it.headNext(); ok {
				it.a = a
				it.vecNext, it.vecStop = iter.Pull2(v.All())

				continue
			}

			it.headStop()
			it.headNext, it.headStop = nil, nil
		}

		it.ok = false

		return
	}
}

// Finished reports whether the cursor has been exhausted.
func (it *Iterator) Finished() bool { return !it.ok }

// Current returns the triple at the cursor, and whether it.ok (false once
// Finished).
func (it *Iterator) Current() (Triple, bool) { return it.current, it.ok }

// Next advances the cursor, returning whether it now points at a triple.
func (it *Iterator) Next() bool {
	it.advance()

	return it.ok
}

// Close releases the underlying pull cursors. Safe to call more than once.
func (it *Iterator) Close() {
	if it.termStop != nil {
		it.termStop()
		it.termNext, it.termStop = nil, nil
	}

	if it.vecStop != nil {
		it.vecStop()
		it.vecNext, it.vecStop = nil, nil
	}

	if it.headStop != nil {
		it.headStop()
		it.headNext, it.headStop = nil, nil
	}
}
