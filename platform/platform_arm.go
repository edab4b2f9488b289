//go:build arm && !noasm

package platform

// Width is the target register width in bits.
const Width = 32

// Solution is the ABA strategy available on this architecture.
const Solution = LLSC
