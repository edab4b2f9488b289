//go:build linux

package futex

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/sgleissner/concurrentfw/atomic"
	"github.com/sgleissner/concurrentfw/errs"
)

// The three Futex states.
const (
	unlocked        = 0
	lockedNoWaiters = 1
	lockedWaiters   = 2
)

// Futex is the textbook Drepper three-state mutex: lock/unlock stay
// in userspace under no contention, and only call into the kernel once
// a second thread is actually waiting.
//
// The zero value is a ready-to-use, unlocked Futex.
type Futex struct {
	state atomic.Value[int32]
}

// New builds a Futex in the given initial state, for callers that hand
// out a pre-locked mutex. New(false) is equivalent to the zero value.
func New(locked bool) *Futex {
	f := &Futex{}
	if locked {
		f.state.Store(atomic.Relaxed, lockedNoWaiters)
	}
	return f
}

// Lock blocks until the mutex is acquired. It only returns a non-nil
// error for an unexpected errno out of the kernel wait (an
// errs.OsError); ordinary contention is handled entirely inside the
// slow path.
func (f *Futex) Lock() error {
	expected := int32(unlocked)
	if f.state.CompareAndSwapStrong(atomic.Acquire, atomic.Relaxed, &expected, lockedNoWaiters) {
		return nil
	}
	_, err := f.wait(expected, nil)
	return err
}

// Trylock attempts to acquire the mutex without blocking and reports
// whether it succeeded. Never touches the kernel.
func (f *Futex) Trylock() bool {
	expected := int32(unlocked)
	return f.state.CompareAndSwapStrong(atomic.Acquire, atomic.Relaxed, &expected, lockedNoWaiters)
}

// TrylockTimeout attempts to acquire the mutex, waiting in the kernel
// for up to d if it is already held. It reports whether the mutex was
// acquired before the deadline; a non-nil error indicates an unexpected
// OS error, not a timeout (a timeout is (false, nil)).
func (f *Futex) TrylockTimeout(d time.Duration) (bool, error) {
	expected := int32(unlocked)
	if f.state.CompareAndSwapStrong(atomic.Acquire, atomic.Relaxed, &expected, lockedNoWaiters) {
		return true, nil
	}
	deadline := time.Now().Add(d)
	acquired, err := f.wait(expected, &deadline)
	return acquired, err
}

// Unlock releases the mutex. If another thread was waiting in the
// kernel, it wakes exactly one of them.
func (f *Futex) Unlock() {
	prev := f.state.FetchSub(atomic.Release, 1)
	if prev == lockedWaiters {
		f.state.Store(atomic.Relaxed, unlocked)
		wake(f.state.Raw(), 1)
	}
}

// wait is the Drepper slow path shared by Lock and TrylockTimeout. observed
// is the state most recently seen by the caller's failed CAS; deadline is
// nil for an unbounded wait.
func (f *Futex) wait(observed int32, deadline *time.Time) (bool, error) {
	if observed != lockedWaiters {
		observed = f.state.Exchange(atomic.Acquire, lockedWaiters)
	}
	for observed != unlocked {
		var ts *unix.Timespec
		if deadline != nil {
			remaining := time.Until(*deadline)
			if remaining <= 0 {
				return false, nil
			}
			t := unix.NsecToTimespec(remaining.Nanoseconds())
			ts = &t
		}

		_, errno := wait(f.state.Raw(), lockedWaiters, ts)
		if errno != 0 {
			switch {
			case errno == unix.EAGAIN || errno == unix.EINTR:
				// Spurious wake, or the unlocker raced ahead of us and
				// the kernel's own atomic recheck caught it — loop and
				// re-observe state.
			case errno == unix.ETIMEDOUT && deadline != nil:
				return false, nil
			default:
				return false, errs.NewOsError("futex: wait", errno)
			}
		}
		observed = f.state.Exchange(atomic.Acquire, lockedWaiters)
	}
	return true, nil
}
