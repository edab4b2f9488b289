//go:build arm && !noasm

package aba

import (
	"unsafe"

	"github.com/sgleissner/concurrentfw/atomic"
	"github.com/sgleissner/concurrentfw/internal/spin"
	"github.com/sgleissner/concurrentfw/llsc"
)

// Cell mirrors the arm64 LL/SC backend at 32-bit word width: ARMv7 has
// no native 64-bit exclusive load/store pair, so the cell, and every T
// it holds, is limited to one 32-bit word.
type Cell[T atomic.Word] struct {
	word uint32
}

func New[T atomic.Word](init T) *Cell[T] {
	var zero T
	if unsafe.Sizeof(zero) != 4 {
		panic("aba: T must be 4 bytes wide on arm")
	}
	return &Cell[T]{word: widen(init)}
}

func (c *Cell[T]) Get() T {
	return narrow[T](llsc.LoadAcquire(&c.word))
}

func (c *Cell[T]) GetCounter() uint64 {
	return 0
}

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

func widen[T atomic.Word](v T) uint32 {
	return *(*uint32)(unsafe.Pointer(&v))
}

func narrow[T atomic.Word](w uint32) T {
	return *(*T)(unsafe.Pointer(&w))
}
