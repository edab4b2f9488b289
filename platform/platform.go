// Package platform exposes the compile-time platform descriptor that the
// rest of concurrentfw builds against: the target register width and the
// ABA strategy available on it (double-word CAS vs. load-linked/
// store-conditional). Nothing in this package is a runtime value — every
// constant here is resolved by the Go build's GOARCH before a single byte
// of the ABA wrapper is compiled.
package platform

// ABASolution names the hazard-avoidance strategy AbaCell uses on the
// target architecture.
type ABASolution uint8

const (
	// DWCAS selects the double-word compare-and-swap backend (dwcas
	// package): a value word and a counter word packed into one
	// CAS-able double word.
	DWCAS ABASolution = iota
	// LLSC selects the load-linked/store-conditional backend (llsc
	// package): the exclusive monitor itself detects interleaving
	// writers, so no counter is stored.
	LLSC
	// Fallback selects the portable, no-assembly backend for
	// architectures with neither a double-word CAS nor an exposed
	// LL/SC pair in Go's assembler surface. It trades lock-freedom for
	// a mutex-guarded cell and counter; see aba.Cell's fallback doc.
	Fallback
)

func (s ABASolution) String() string {
	switch s {
	case DWCAS:
		return "DWCAS"
	case LLSC:
		return "LLSC"
	default:
		return "Fallback"
	}
}
