//go:build arm64 && !noasm

package spin

// Relax emits the ARM64 YIELD instruction. Implementation lives in
// spin_arm64.s.
//
//go:noescape
func Relax()
