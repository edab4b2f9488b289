// stack_bench_test.go — Micro-benchmarks for the intrusive Treiber
// stack. Blocks are recycled in place, so none of these allocate.
package stack

import (
	"testing"
	"unsafe"
)

// BenchmarkPushPop measures the single-thread push+pop pair, the cost a
// free-list user pays per borrow/return cycle.
func BenchmarkPushPop(b *testing.B) {
	s := New()
	var n node
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := s.Push(unsafe.Pointer(&n)); err != nil {
			b.Fatal(err)
		}
		if s.Pop() == nil {
			b.Fatal("Pop returned nil after Push")
		}
	}
}

// BenchmarkPushPopParallel contends GOMAXPROCS goroutines on one
// stack, each cycling a private block through it.
func BenchmarkPushPopParallel(b *testing.B) {
	s := New()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		var n node
		for pb.Next() {
			if err := s.Push(unsafe.Pointer(&n)); err != nil {
				b.Error(err)
				return
			}
			// Under contention this may pop a different goroutine's
			// block; conservation, not identity, is what matters here.
			if s.Pop() == nil {
				b.Error("Pop returned nil with at least one block pushed")
				return
			}
		}
	})
}

func BenchmarkPopEmpty(b *testing.B) {
	s := New()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if s.Pop() != nil {
			b.Fatal("Pop on empty stack returned a block")
		}
	}
}
