// Package spin provides the CPU back-off hint used by the ABA cell's
// retry loops (the DWCAS contended CAS loop and the LL/SC
// store-conditional loop).
//
// Relax hints to the CPU that the calling goroutine is spinning on a
// contended word, allowing SMT siblings to make progress and reducing
// power draw. It is not a scheduling point: the goroutine remains
// runnable. Safe to call in the tightest retry loop of AbaCell.Modify.
package spin
