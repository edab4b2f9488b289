// Package dwcas implements the x86-64 double-word CAS backend AbaCell
// dispatches to on platforms where platform.Solution == platform.DWCAS:
// a Pair of two machine words treated as one atomic unit via LOCK
// CMPXCHG16B, Lo carrying the cell's value and Hi its tag counter.
//
// The package is empty on every other architecture (and under the
// noasm tag); aba's build tags guarantee nothing imports it there.
package dwcas
