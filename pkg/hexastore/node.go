// Package hexastore implements an in-memory triple index: a three-level
// sorted nested-array structure over a configurable permutation of
// (subject, predicate, object).
package hexastore

import "github.com/ptizoom/hexastore/pkg/tuple"

// NodeID identifies an RDF term. It is an opaque 64-bit signed integer;
// callers own whatever dictionary maps real-world terms to ids.
type NodeID int64

// Triple is an ordered (subject, predicate, object) of node identifiers.
type Triple = tuple.Tuple3[NodeID, NodeID, NodeID]

// NewTriple builds a Triple from its components.
func NewTriple(s, p, o NodeID) Triple { return tuple.New3(s, p, o) }

// Ordering selects which permutation of a triple's three positions an Index
// stores by, fixing the lexicographic order triples are iterated in.
type Ordering int

const (
	SPO Ordering = iota
	SOP
	PSO
	POS
	OSP
	OPS
)

// String returns the three-letter name of the ordering.
func (o Ordering) String() string {
	switch o {
	case SPO:
		return "SPO"
	case SOP:
		return "SOP"
	case PSO:
		return "PSO"
	case POS:
		return "POS"
	case OSP:
		return "OSP"
	case OPS:
		return "OPS"
	default:
		return "invalid"
	}
}

// valid reports whether o is one of the six defined permutations.
func (o Ordering) valid() bool {
	return o >= SPO && o <= OPS
}

// project maps (s, p, o) to (a, b, c) under the ordering's permutation.
func (o Ordering) project(s, p, o2 NodeID) (a, b, c NodeID) {
	switch o {
	case SPO:
		return s, p, o2
	case SOP:
		return s, o2, p
	case PSO:
		return p, s, o2
	case POS:
		return p, o2, s
	case OSP:
		return o2, s, p
	case OPS:
		return o2, p, s
	default:
		return s, p, o2
	}
}

// unproject inverts project, recovering (s, p, o) from (a, b, c).
func (o Ordering) unproject(a, b, c NodeID) (s, p, obj NodeID) {
	switch o {
	case SPO:
		return a, b, c
	case SOP:
		return a, c, b
	case PSO:
		return b, a, c
	case POS:
		return c, a, b
	case OSP:
		return b, c, a
	case OPS:
		return c, b, a
	default:
		return a, b, c
	}
}
