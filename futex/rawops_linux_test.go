//go:build linux

package futex

import (
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// TestWaitWakeRoundTrip parks a goroutine in the kernel on a bare word
// and wakes it: no waiter may be left behind once Wake has been issued
// against the updated word.
func TestWaitWakeRoundTrip(t *testing.T) {
	var word int32
	released := make(chan error, 1)

	go func() {
		for atomic.LoadInt32(&word) == 0 {
			if _, err := Wait(&word, 0, nil); err != nil && err != unix.EAGAIN && err != unix.EINTR {
				released <- err
				return
			}
		}
		released <- nil
	}()

	// Give the waiter a moment to reach the kernel; EAGAIN covers the
	// race where it has not yet.
	time.Sleep(10 * time.Millisecond)
	atomic.StoreInt32(&word, 1)
	if _, err := Wake(&word, 1); err != nil {
		t.Fatalf("Wake: %v", err)
	}

	select {
	case err := <-released:
		if err != nil {
			t.Fatalf("Wait: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("waiter never woke: lost wake-up")
	}
}

func TestWaitValueMismatchReturnsEagain(t *testing.T) {
	var word int32 = 7
	_, err := Wait(&word, 0, nil)
	if err != unix.EAGAIN {
		t.Fatalf("Wait with stale expected = %v, want EAGAIN", err)
	}
}

func TestWaitTimeout(t *testing.T) {
	var word int32
	ts := unix.NsecToTimespec((50 * time.Millisecond).Nanoseconds())

	start := time.Now()
	_, err := Wait(&word, 0, &ts)
	if err != unix.ETIMEDOUT {
		t.Fatalf("Wait = %v, want ETIMEDOUT", err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Fatalf("Wait returned after %v, before the timeout", elapsed)
	}
}

// TestWakeBitsetSelectsWaiter parks one waiter with a bitset and
// checks a non-overlapping WakeBitset leaves it asleep while a
// matching one releases it.
func TestWakeBitsetSelectsWaiter(t *testing.T) {
	var word int32
	const waiterBits = 0x1
	released := make(chan error, 1)

	go func() {
		for atomic.LoadInt32(&word) == 0 {
			_, err := WaitBitset(&word, 0, nil, waiterBits)
			if err != nil && err != unix.EAGAIN && err != unix.EINTR {
				released <- err
				return
			}
		}
		released <- nil
	}()

	time.Sleep(10 * time.Millisecond)
	if _, err := WakeBitset(&word, 1, 0x2); err != nil {
		t.Fatalf("WakeBitset(non-matching): %v", err)
	}
	select {
	case <-released:
		t.Fatal("a non-overlapping bitset must not wake the waiter")
	case <-time.After(50 * time.Millisecond):
	}

	atomic.StoreInt32(&word, 1)
	if _, err := WakeBitset(&word, 1, waiterBits); err != nil {
		t.Fatalf("WakeBitset(matching): %v", err)
	}
	select {
	case err := <-released:
		if err != nil {
			t.Fatalf("WaitBitset: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("matching WakeBitset never released the waiter")
	}
}

func TestNewLocked(t *testing.T) {
	f := New(true)
	if f.Trylock() {
		t.Fatal("Trylock on a pre-locked Futex should fail")
	}
	f.Unlock()
	if !f.Trylock() {
		t.Fatal("Trylock after unlocking a pre-locked Futex should succeed")
	}
	f.Unlock()

	if g := New(false); !g.Trylock() {
		t.Fatal("Trylock on New(false) should succeed")
	}
}
