package atomic

import "sync/atomic"

// Flag is Value's single-byte special case: test-and-set and clear
// are only defined for byte-sized payloads. Go has no byte-granularity
// atomic instruction, so Flag is backed by a full uint32, the same
// trade every Go atomic.Bool in the standard library makes.
type Flag struct {
	raw atomic.Uint32
}

// TestAndSet atomically sets the flag and reports its previous value.
func (f *Flag) TestAndSet(order Order) bool {
	return f.raw.Swap(1) != 0
}

// Clear atomically resets the flag to false.
func (f *Flag) Clear(order Order) {
	f.raw.Store(0)
}

// IsSet reports the flag's current value.
func (f *Flag) IsSet(order Order) bool {
	return f.raw.Load() != 0
}
