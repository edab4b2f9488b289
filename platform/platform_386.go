//go:build 386 && !noasm

package platform

// Width is the target register width in bits.
const Width = 32

// Solution is the ABA strategy available on this architecture. 386 does
// have CMPXCHG8B, but concurrentfw only ships the CMPXCHG16B-based
// amd64 backend, so 386 runs the mutex fallback.
const Solution = Fallback
