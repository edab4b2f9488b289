// Package stack implements a lock-free intrusive Treiber stack: the
// stack links pushed blocks through their own first machine word, so
// Stack itself never allocates.
package stack

import (
	"unsafe"

	"github.com/sgleissner/concurrentfw/aba"
	"github.com/sgleissner/concurrentfw/errs"
)

// Stack is a lock-free LIFO of caller-owned memory blocks. The zero
// value is an empty, ready-to-use stack; like aba.Cell, a Stack must
// not be copied after first use.
//
// Ideally Stack would be cache-line aligned, keeping the hot ABA cell
// off a line shared with unrelated data. Go has no portable way to
// request that for heap objects, so embedders that care should pad
// manually (sysconf.CacheLineSize gives the line width).
type Stack struct {
	top aba.Cell[uintptr]
}

// New returns an empty Stack with its cell's tag counter seeded the
// way aba.New seeds it. A zero-value Stack behaves identically except
// that, on the DWCAS backend, its counter starts at 0 instead of 1.
func New() *Stack {
	return &Stack{top: *aba.New[uintptr](0)}
}

// Push links block onto the top of the stack. block's first machine
// word is overwritten with the stack's previous top — callers must not
// keep other data there. Push returns InvalidArgument for a nil block.
func (s *Stack) Push(block unsafe.Pointer) error {
	if block == nil {
		return errs.NewInvalidArgument("stack: nil block")
	}
	s.top.Modify(func(cur uintptr) (uintptr, bool) {
		*(*uintptr)(block) = cur
		return uintptr(block), true
	})
	return nil
}

// Pop unlinks and returns the top block, or nil if the stack is empty.
//
// Stack does no memory reclamation: a concurrent Pop that observed the
// same top may still read the returned block's first word. Recycling a
// popped block through Push is safe; freeing it, or reusing its first
// word for other data, is only safe once no other Pop can be in flight.
func (s *Stack) Pop() unsafe.Pointer {
	var popped uintptr
	s.top.Modify(func(cur uintptr) (uintptr, bool) {
		popped = cur
		if popped == 0 {
			return 0, false
		}
		next := *(*uintptr)(unsafe.Pointer(popped))
		return next, true
	})
	return unsafe.Pointer(popped)
}
