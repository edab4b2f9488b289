package atomic

import "runtime"

// ThreadFence establishes a fence between threads without touching an
// atomic object. Go's memory model gives sync/atomic
// operations full sequential consistency already, so a standalone
// fence has no additional work to do beyond preventing the compiler
// from hoisting code across it; KeepAlive is a convenient, documented
// no-reorder boundary for that purpose.
func ThreadFence(order Order) {
	runtime.KeepAlive(order)
}

// SignalFence establishes a fence against the calling thread's own
// asynchronous signal handlers only — no cross-thread synchronization.
// concurrentfw does not install signal handlers of its own; exposed
// for API parity with ThreadFence.
func SignalFence(order Order) {
	runtime.KeepAlive(order)
}
