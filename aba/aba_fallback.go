//go:build (!amd64 && !arm64 && !arm) || noasm

package aba

import (
	"sync"

	"github.com/sgleissner/concurrentfw/atomic"
)

// Cell is an ABA-safe slot with no architecture-specific backend
// available (or noasm forcing one off): a plain mutex stands in for
// the hardware double-word CAS / LL-SC, with the same explicit tag
// counter the DWCAS backend uses. Correct, not lock-free — concurrentfw
// only promises lock-freedom where a real DWCAS/LL-SC exists.
type Cell[T atomic.Word] struct {
	mu      sync.Mutex
	val     T
	counter uint64
}

// New builds a Cell holding init, with its tag counter seeded at 1 to
// match the DWCAS backend's convention.
func New[T atomic.Word](init T) *Cell[T] {
	return &Cell[T]{val: init, counter: 1}
}

func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.val
}

func (c *Cell[T]) GetCounter() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counter
}

func (c *Cell[T]) Modify(f func(cur T) (next T, ok bool)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, ok := f(c.val)
	if !ok {
		return false
	}
	c.val = next
	c.counter++
	return true
}
