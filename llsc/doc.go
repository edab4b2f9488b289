// Package llsc implements the ARM load-linked/store-conditional
// backend AbaCell dispatches to on platforms where platform.Solution
// == platform.LLSC. Unlike dwcas, LL/SC needs no explicit tag counter:
// the core's local exclusive monitor is invalidated by any write to
// the watched address, including a write of the same value, which is
// exactly the ABA guard a DWCAS platform gets from a counter word.
//
// The package is empty outside arm/arm64 (and under the noasm tag);
// aba's build tags guarantee nothing imports it there.
package llsc
