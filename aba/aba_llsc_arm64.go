//go:build arm64 && !noasm

package aba

import (
	"unsafe"

	"github.com/sgleissner/concurrentfw/atomic"
	"github.com/sgleissner/concurrentfw/internal/spin"
	"github.com/sgleissner/concurrentfw/llsc"
)

// Cell is an ABA-safe slot for a single machine word. On the LL/SC
// backend it is one uint64 holding T's bit pattern directly — no tag
// counter, since the core's exclusive monitor already invalidates a
// stale Modify attempt on any intervening write to the cell.
type Cell[T atomic.Word] struct {
	word uint64
}

// New builds a Cell holding init.
func New[T atomic.Word](init T) *Cell[T] {
	return &Cell[T]{word: widen(init)}
}

// Get atomically reads the cell's current value.
func (c *Cell[T]) Get() T {
	return narrow[T](llsc.LoadAcquire(&c.word))
}

// GetCounter always reports 0 on the LL/SC backend: ABA protection
// comes from the exclusive monitor, not an explicit counter, so there
// is nothing to report. Present only for API parity with the DWCAS
// backend.
func (c *Cell[T]) GetCounter() uint64 {
	return 0
}

// Modify atomically replaces the cell's value, retrying the
// load-linked/store-conditional pair until it succeeds or f declines.
// f is called again on every retry, so it must be pure apart from
// computing its result.
func (c *Cell[T]) Modify(f func(cur T) (next T, ok bool)) bool {
	for {
		cur := narrow[T](llsc.LoadAcquire(&c.word))
		next, ok := f(cur)
		if !ok {
			llsc.Abort()
			return false
		}
		if llsc.StoreRelease(&c.word, widen(next)) {
			return true
		}
		spin.Relax()
	}
}

func widen[T atomic.Word](v T) uint64 {
	if unsafe.Sizeof(v) == 8 {
		return *(*uint64)(unsafe.Pointer(&v))
	}
	w := *(*uint32)(unsafe.Pointer(&v))
	return uint64(w)
}

func narrow[T atomic.Word](w uint64) T {
	var zero T
	if unsafe.Sizeof(zero) == 8 {
		return *(*T)(unsafe.Pointer(&w))
	}
	w32 := uint32(w)
	return *(*T)(unsafe.Pointer(&w32))
}
