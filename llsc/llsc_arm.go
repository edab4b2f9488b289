//go:build arm && !noasm

package llsc

// ARMv7 lacks the acquire/release-flavored LDAEX/STLEX encodings ARMv8
// added, so ordering is built from explicit DMB barriers around plain
// LDREX/STREX.

import "unsafe"

//go:noescape
func loadAcquire32(addr unsafe.Pointer) uint32

//go:noescape
func storeRelease32(addr unsafe.Pointer, val uint32) uint32

//go:noescape
func abort32()

func LoadAcquire(addr *uint32) uint32 {
	return loadAcquire32(unsafe.Pointer(addr))
}

func StoreRelease(addr *uint32, val uint32) bool {
	return storeRelease32(unsafe.Pointer(addr), val) != 0
}

func Abort() {
	abort32()
}
