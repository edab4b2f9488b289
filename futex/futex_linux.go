//go:build linux

package futex

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// rawFutex issues the futex(2) syscall directly via SYS_FUTEX rather
// than through golang.org/x/sys/unix's FutexWait/FutexWake convenience
// wrappers, which don't cover cmp-requeue, wake-op or the bitset
// variants. val2 multiplexes onto the kernel's timeout
// argument slot for ops that take a second integer instead of a
// timespec (cmp-requeue's requeue count, wake-op's second wake count).
func rawFutex(addr *int32, op int32, val uint32, val2 uintptr, addr2 *int32, val3 uint32) (int32, unix.Errno) {
	r1, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(op),
		uintptr(val),
		val2,
		uintptr(unsafe.Pointer(addr2)),
		uintptr(val3),
	)
	return int32(r1), errno
}

func asError(errno unix.Errno) error {
	if errno == 0 {
		return nil
	}
	return errno
}

// wait blocks while *addr == expected, per FUTEX_WAIT_PRIVATE. timeout
// may be nil to block indefinitely. Returns the raw errno so Futex's
// slow path can distinguish EAGAIN/EINTR/ETIMEDOUT from a fatal error.
func wait(addr *int32, expected int32, timeout *unix.Timespec) (int32, unix.Errno) {
	return rawFutex(addr, waitPrivate, uint32(expected), uintptr(unsafe.Pointer(timeout)), nil, 0)
}

// wake wakes up to n waiters on addr, per FUTEX_WAKE_PRIVATE.
func wake(addr *int32, n int32) (int32, unix.Errno) {
	return rawFutex(addr, wakePrivate, uint32(n), 0, nil, 0)
}

// Wait is wait's export for higher-level primitives built on a bare
// atomic word: it blocks while *addr ==
// expected, waking on a matching Wake/WakeOp/CmpRequeue or a spurious
// kernel event. timeout may be nil to block indefinitely.
func Wait(addr *int32, expected int32, timeout *unix.Timespec) (int32, error) {
	n, errno := wait(addr, expected, timeout)
	return n, asError(errno)
}

// Wake wakes up to n waiters blocked in Wait on addr, and reports how
// many were actually woken.
func Wake(addr *int32, n int32) (int32, error) {
	woken, errno := wake(addr, n)
	return woken, asError(errno)
}

// CmpRequeue wakes up to wakeN waiters on addr and, if *addr still
// equals expected, requeues up to requeueN of the rest onto addr2
// without waking them, per FUTEX_CMP_REQUEUE_PRIVATE — the building
// block for condition variables layered on a Futex.
func CmpRequeue(addr *int32, wakeN, requeueN int32, addr2 *int32, expected int32) (int32, error) {
	n, errno := rawFutex(addr, cmpRequeuePr, uint32(wakeN), uintptr(requeueN), addr2, uint32(expected))
	return n, asError(errno)
}

// WakeOp wakes up to wakeN waiters on addr, then atomically applies
// encodedOp (built by EncodeWakeOp) to *addr2 and conditionally wakes up
// to wake2N more waiters on addr2 depending on the comparison encoded in
// encodedOp, per FUTEX_WAKE_OP_PRIVATE.
func WakeOp(addr *int32, wakeN int32, addr2 *int32, wake2N int32, encodedOp uint32) (int32, error) {
	n, errno := rawFutex(addr, wakeOpPriv, uint32(wakeN), uintptr(wake2N), addr2, encodedOp)
	return n, asError(errno)
}

// WaitBitset is Wait with a waiter bitset, per FUTEX_WAIT_BITSET_PRIVATE
// — only a Wake/WakeBitset/WakeOp/CmpRequeue whose bitset shares a bit
// with this wait will observe it.
func WaitBitset(addr *int32, expected int32, timeout *unix.Timespec, bitset uint32) (int32, error) {
	r1, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(waitBitsetPr),
		uintptr(uint32(expected)),
		uintptr(unsafe.Pointer(timeout)),
		0,
		uintptr(bitset),
	)
	return int32(r1), asError(unix.Errno(errno))
}

// WakeBitset wakes up to n waiters matching bitset, per
// FUTEX_WAKE_BITSET_PRIVATE.
func WakeBitset(addr *int32, n int32, bitset uint32) (int32, error) {
	r1, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(wakeBitsetPr),
		uintptr(uint32(n)),
		0,
		0,
		uintptr(bitset),
	)
	return int32(r1), asError(unix.Errno(errno))
}
