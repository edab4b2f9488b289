// Package diag is a fmt-free, cold-path-only diagnostic logger; each
// call allocates only the concatenated output line.
//
// It exists purely for the stress/benchmark harnesses of the test
// suite to report scenario failures without dragging fmt/log into a
// build whose whole point is avoiding allocation on any path a caller
// could reach from a hot loop. concurrentfw's actual primitives (aba,
// stack, futex) never call into this package: AbaCell.Modify,
// Stack.Push/Pop and the futex fast path are infallible and must not
// log. Writes go straight to stderr, skipping fmt.Sprintf's
// allocations even on these infrequent paths.
package diag

import "syscall"

// Warn writes "prefix: message\n" directly to fd 2, bypassing fmt and
// any heap allocation beyond the one needed to concatenate the three
// pieces. Intended for test/bench harness diagnostics only.
func Warn(prefix, message string) {
	msg := prefix + ": " + message + "\n"
	write(msg)
}

// Note writes "prefix\n" directly to fd 2.
func Note(prefix string) {
	write(prefix + "\n")
}

func write(s string) {
	_, _ = syscall.Write(2, unsafeBytes(s))
}
