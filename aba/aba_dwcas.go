//go:build amd64 && !noasm

package aba

import (
	"unsafe"

	"github.com/sgleissner/concurrentfw/atomic"
	"github.com/sgleissner/concurrentfw/dwcas"
	"github.com/sgleissner/concurrentfw/internal/spin"
)

// Cell is an ABA-safe slot for a single machine word. On the DWCAS
// backend it is a dwcas.Pair: Lo carries T's bit pattern (widened to 64
// bits regardless of sizeof(T)), Hi a monotonically increasing tag
// counter bumped on every successful Modify. Every instantiation uses
// the same 64-bit CMPXCHG16B path; narrower values are widened to a
// full word.
//
// A Cell must not be copied after first use, and must be allocated so
// its address is 16-byte aligned — embedding it as a struct's first
// field (as Stack does with its top cell; Ptr instead holds a separately
// allocated *Cell) relies on Go's size-class alignment for that; see
// dwcas.Pair's doc comment.
type Cell[T atomic.Word] struct {
	pair dwcas.Pair
}

// New builds a Cell holding init, with its tag counter seeded at 1 so
// GetCounter() never returns the zero value a freshly zeroed (not
// New'd) Cell would.
func New[T atomic.Word](init T) *Cell[T] {
	return &Cell[T]{pair: dwcas.Pair{Lo: widen(init), Hi: 1}}
}

// Get atomically reads the cell's current value.
func (c *Cell[T]) Get() T {
	lo, _ := dwcas.Load(&c.pair)
	return narrow[T](lo)
}

// GetCounter returns the cell's current tag counter. Exposed for
// testing the ABA property itself: it must differ after a pop/push
// round trip even when the value returns to its original bit pattern.
func (c *Cell[T]) GetCounter() uint64 {
	_, hi := dwcas.Load(&c.pair)
	return hi
}

// Modify atomically replaces the cell's value: it calls f with the
// current value, and if f reports ok, attempts a double-word CAS that
// stores f's result and increments the tag counter. When the CAS fails
// because another writer got in first, f is called again with the
// freshly observed value, so f may run many times per Modify and must
// be pure apart from computing its result. If f reports !ok, Modify
// aborts without writing and returns false — f is free to observe
// staleness and decline rather than retry forever.
func (c *Cell[T]) Modify(f func(cur T) (next T, ok bool)) bool {
	lo, hi := dwcas.Load(&c.pair)
	for {
		next, ok := f(narrow[T](lo))
		if !ok {
			return false
		}
		success, aLo, aHi := dwcas.CAS(&c.pair, lo, hi, widen(next), hi+1)
		if success {
			return true
		}
		spin.Relax()
		lo, hi = aLo, aHi
	}
}

// widen bit-reinterprets a Word as a zero-extended uint64 so every
// instantiation of Cell[T] shares one 64-bit CAS backend regardless of
// whether sizeof(T) is 4 or 8.
func widen[T atomic.Word](v T) uint64 {
	if unsafe.Sizeof(v) == 8 {
		return *(*uint64)(unsafe.Pointer(&v))
	}
	w := *(*uint32)(unsafe.Pointer(&v))
	return uint64(w)
}

// narrow is widen's inverse.
func narrow[T atomic.Word](w uint64) T {
	var zero T
	if unsafe.Sizeof(zero) == 8 {
		return *(*T)(unsafe.Pointer(&w))
	}
	w32 := uint32(w)
	return *(*T)(unsafe.Pointer(&w32))
}
