// Package errs defines the two error kinds concurrentfw can return.
// Every non-faulting atomic, AbaCell.Modify, Stack.Pop, and the
// concurrent pointer are infallible and never appear here; Stack.Push
// fails only for a nil block. Only caller-argument validation
// (InvalidArgument) and unexpected syscall failures (OsError, wrapping
// the raw errno) are reported, each with a short context string.
package errs

import "fmt"

// InvalidArgument is returned for caller mistakes that are never
// retried: pushing a nil block onto a Stack, or querying sysconf for an
// unrecognized key.
type InvalidArgument struct {
	Context string
}

func (e *InvalidArgument) Error() string {
	return "concurrentfw: invalid argument: " + e.Context
}

// NewInvalidArgument builds an InvalidArgument error with the given
// context string.
func NewInvalidArgument(context string) error {
	return &InvalidArgument{Context: context}
}

// OsError wraps an unexpected errno surfaced from a futex syscall —
// anything other than EAGAIN, EINTR, or (on the timed path)
// ETIMEDOUT, all of which are absorbed internally and never reach the
// caller.
type OsError struct {
	Context string
	Errno   error
}

func (e *OsError) Error() string {
	return fmt.Sprintf("concurrentfw: %s: %v", e.Context, e.Errno)
}

func (e *OsError) Unwrap() error {
	return e.Errno
}

// NewOsError builds an OsError carrying the failing errno and a short
// context string identifying the call site.
func NewOsError(context string, errno error) error {
	return &OsError{Context: context, Errno: errno}
}
