//go:build amd64 && !noasm

package spin

// Relax emits the x86-64 PAUSE instruction. Implementation lives in
// spin_amd64.s.
//
//go:noescape
func Relax()
