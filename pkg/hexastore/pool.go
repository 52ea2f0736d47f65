package hexastore

import "github.com/ptizoom/hexastore/internal/xsync"

// terminalPool recycles Terminals released by cascading cleanup (§4.5)
// instead of letting the GC reclaim and later reallocate their backing
// arrays from scratch.
var terminalPool = xsync.Pool[Terminal]{
	New:   func() *Terminal { return newTerminal() },
	Reset: func(t *Terminal) { t.reset() },
}

// vectorPool recycles Vectors the same way terminalPool recycles Terminals.
var vectorPool = xsync.Pool[Vector]{
	New:   func() *Vector { return newVector() },
	Reset: func(v *Vector) { v.reset() },
}

func getTerminal() *Terminal {
	return terminalPool.Get()
}

func putTerminal(t *Terminal) {
	terminalPool.Put(t)
}

func getVector() *Vector {
	return vectorPool.Get()
}

func putVector(v *Vector) {
	vectorPool.Put(v)
}
