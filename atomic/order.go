package atomic

// Order names a C++11-style memory ordering. Go's runtime only exposes
// sequentially-consistent atomics through sync/atomic — there is no
// portable way to request a weaker fence from pure Go the way
// std::memory_order_relaxed does. Value's methods still take an Order
// so callers state their intent, and so the DWCAS/LL-SC assembly
// backends beneath AbaCell (which genuinely do encode acquire/release
// in their instruction selection) have a consistent vocabulary to
// share with this package. Every Order here executes with full
// sequential consistency.
type Order uint8

const (
	Relaxed Order = iota
	Consume
	Acquire
	Release
	AcqRel
	SeqCst
)

// validLoadOrder panics if order is not a legal load order (relaxed,
// consume, acquire, seq_cst).
func validLoadOrder(order Order) {
	switch order {
	case Relaxed, Consume, Acquire, SeqCst:
		return
	default:
		panic("atomic: invalid order for Load")
	}
}

// validStoreOrder panics if order is not a legal store order (relaxed,
// release, seq_cst).
func validStoreOrder(order Order) {
	switch order {
	case Relaxed, Release, SeqCst:
		return
	default:
		panic("atomic: invalid order for Store")
	}
}

// validExchangeOrder panics if order is not a legal exchange order
// (relaxed, acquire, release, acq_rel, seq_cst).
func validExchangeOrder(order Order) {
	switch order {
	case Relaxed, Acquire, Release, AcqRel, SeqCst:
		return
	default:
		panic("atomic: invalid order for Exchange")
	}
}

// validCasOrders panics if fail is stronger than ok; only the weaker-
// or-equal pairings are legal for a compare-and-swap.
func validCasOrders(ok, fail Order) {
	switch fail {
	case Relaxed:
		return
	case Consume:
		if ok == Consume || ok == Acquire || ok == Release || ok == AcqRel || ok == SeqCst {
			return
		}
	case Acquire:
		if ok == Acquire || ok == Release || ok == AcqRel || ok == SeqCst {
			return
		}
	case SeqCst:
		if ok == SeqCst {
			return
		}
	}
	panic("atomic: fail order stronger than ok order")
}
