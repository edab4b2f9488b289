//go:build (!amd64 && !arm64) || noasm

package spin

// Relax is a no-op on architectures without a dedicated spin-hint
// instruction wired up, or when assembly stubs are disabled via
// 'noasm'.
func Relax() {}
