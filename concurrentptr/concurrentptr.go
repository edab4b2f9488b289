// Package concurrentptr provides an ABA-safe pointer: a thin
// pointer-typed convenience wrapper over aba.Cell, for callers who
// want ABA safety on a pointer without writing out the uintptr
// bit-cast themselves.
package concurrentptr

import (
	"unsafe"

	"github.com/sgleissner/concurrentfw/aba"
)

// Ptr is an ABA-safe *T. It holds a raw, non-owning pointer: storing
// a value here does not keep the pointee alive for Go's garbage
// collector. Callers must hold their own ordinary *T reference (or
// otherwise pin the memory) for as long as a Ptr may still observe it.
type Ptr[T any] struct {
	cell *aba.Cell[uintptr]
}

// New builds a Ptr initialized to init.
func New[T any](init *T) *Ptr[T] {
	return &Ptr[T]{cell: aba.New[uintptr](uintptr(unsafe.Pointer(init)))}
}

// Get atomically reads the current pointer value.
func (p *Ptr[T]) Get() *T {
	return (*T)(unsafe.Pointer(p.cell.Get()))
}

// GetCounter returns the cell's current ABA tag counter: on the DWCAS
// backend it advances by one per successful Set; the LL/SC backend
// always reports 0.
func (p *Ptr[T]) GetCounter() uint64 {
	return p.cell.GetCounter()
}

// Set atomically stores val.
func (p *Ptr[T]) Set(val *T) {
	p.cell.Modify(func(uintptr) (uintptr, bool) {
		return uintptr(unsafe.Pointer(val)), true
	})
}
