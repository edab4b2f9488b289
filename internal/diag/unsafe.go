package diag

import "unsafe"

// unsafeBytes views s as a []byte without copying. s must not be
// modified through the returned slice and must outlive it — both hold
// trivially here since s is a freshly built, never-reused local string.
func unsafeBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
