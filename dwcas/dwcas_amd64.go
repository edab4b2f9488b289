//go:build amd64 && !noasm

package dwcas

import "unsafe"

// Pair is the double-word unit CAS operates on. It has no pointer
// fields, so Go's heap allocator places it at its own size-class
// alignment; for the 16-byte class that alignment is 16 bytes, which is
// what CMPXCHG16B requires. Every Pair handed to this package escapes
// to the heap (see casRaw), so a local `var p Pair` gets that alignment
// too. Callers that embed a Pair in a larger struct
// (AbaCell does) must keep it as the struct's first field so the
// struct's own alignment carries through.
type Pair struct {
	Lo, Hi uint64
}

// casRaw performs a single LOCK CMPXCHG16B attempt against addr. It
// reports success, and the double word actually observed at addr at
// the moment of the attempt — on success that equals (expectedLo,
// expectedHi); on failure it is the current contents, atomically read
// as a side effect of the failed compare, saving callers a separate load.
//
// casRaw is not marked //go:noescape: its addr argument escapes, which
// keeps every Pair passed to it off the goroutine stack, where Go only
// guarantees 8-byte alignment.
func casRaw(addr unsafe.Pointer, expectedLo, expectedHi, desiredLo, desiredHi uint64) (ok, actualLo, actualHi uint64)

// Load atomically reads p. Implemented as a single CAS attempt with an
// arbitrary expected/desired pair: whether or not it happens to match
// (and thus "succeeds" by overwriting p with the same bits), the
// observed double word returned by casRaw is the true value of p at
// that instant.
func Load(p *Pair) (lo, hi uint64) {
	_, lo, hi = casRaw(unsafe.Pointer(p), 0, 0, 0, 0)
	return
}

// Store atomically writes (lo, hi) to p via a CAS retry loop seeded
// by an initial Load, since x86 has no dedicated atomic double-word
// store instruction.
func Store(p *Pair, lo, hi uint64) {
	curLo, curHi := Load(p)
	for {
		ok, actualLo, actualHi := casRaw(unsafe.Pointer(p), curLo, curHi, lo, hi)
		if ok != 0 {
			return
		}
		curLo, curHi = actualLo, actualHi
	}
}

// CAS compares p to (expectedLo, expectedHi) and, on match, stores
// (desiredLo, desiredHi). It reports success and the value observed at
// p, which on failure callers use to retry without a separate reload.
func CAS(p *Pair, expectedLo, expectedHi, desiredLo, desiredHi uint64) (success bool, actualLo, actualHi uint64) {
	ok, aLo, aHi := casRaw(unsafe.Pointer(p), expectedLo, expectedHi, desiredLo, desiredHi)
	return ok != 0, aLo, aHi
}
