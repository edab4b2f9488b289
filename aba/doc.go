// Package aba implements concurrentfw's ABA-safe cell: a fixed-width
// slot that can be atomically read, and atomically updated via a
// caller-supplied modifier function that retries until it either
// succeeds or declines. Cell is the foundation stack.Stack and
// concurrentptr.Ptr are built on.
//
// The concrete layout is chosen at compile time by platform.Solution:
// a double-word CAS on amd64 (aba_dwcas.go), ARM load-linked/
// store-conditional on arm64/arm (aba_llsc_*.go), or a mutex-guarded
// fallback elsewhere (aba_fallback.go). All three expose the identical
// Cell[T] API; callers never see which one they got.
package aba
