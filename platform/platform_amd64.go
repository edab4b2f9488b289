//go:build amd64 && !noasm

package platform

// Width is the target register width in bits.
const Width = 64

// Solution is the ABA strategy available on this architecture.
const Solution = DWCAS
