//go:build (!amd64 && !arm64 && !386 && !arm) || noasm

package platform

import "unsafe"

// Width is the target register width in bits, inferred from the size of
// a pointer since no dedicated DWCAS/LL-SC backend exists for this
// architecture.
const Width = 8 * unsafe.Sizeof(uintptr(0))

// Solution is the ABA strategy available on this architecture.
const Solution = Fallback
