package atomic

import (
	"sync"
	"testing"
)

func TestValueLoadStore(t *testing.T) {
	v := New[int64](1_234_567_890)
	if got := v.Load(SeqCst); got != 1_234_567_890 {
		t.Fatalf("Load() = %d, want 1234567890", got)
	}
	v.Store(SeqCst, -2_000_000_000)
	if got := v.Load(SeqCst); got != -2_000_000_000 {
		t.Fatalf("Load() after Store = %d, want -2000000000", got)
	}
}

func TestExchangeRejectsConsume(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Exchange with a consume order should panic")
		}
	}()
	New[uint32](0).Exchange(Consume, 1)
}

func TestValueExchange(t *testing.T) {
	v := New[uint32](10)
	if prev := v.Exchange(SeqCst, 20); prev != 10 {
		t.Fatalf("Exchange returned %d, want 10", prev)
	}
	if got := v.Load(SeqCst); got != 20 {
		t.Fatalf("Load() after Exchange = %d, want 20", got)
	}
}

func TestValueCompareAndSwap(t *testing.T) {
	v := New[uint64](5)
	expected := uint64(5)
	if !v.CompareAndSwapStrong(SeqCst, Relaxed, &expected, 6) {
		t.Fatal("CAS(5->6) should have succeeded")
	}
	expected = 5 // stale
	if v.CompareAndSwapStrong(SeqCst, Relaxed, &expected, 7) {
		t.Fatal("CAS with stale expected should have failed")
	}
	if expected != 6 {
		t.Fatalf("expected was not updated to observed value: got %d, want 6", expected)
	}
}

func TestValueFetchOps(t *testing.T) {
	v := New[uint32](0xF0)
	if prev := v.FetchOr(SeqCst, 0x0F); prev != 0xF0 {
		t.Fatalf("FetchOr returned %#x, want 0xF0", prev)
	}
	if got := v.Load(SeqCst); got != 0xFF {
		t.Fatalf("after FetchOr, Load() = %#x, want 0xFF", got)
	}

	v2 := New[int64](10)
	if prev := v2.FetchAdd(SeqCst, 5); prev != 10 {
		t.Fatalf("FetchAdd returned %d, want 10", prev)
	}
	if got := v2.Load(SeqCst); got != 15 {
		t.Fatalf("after FetchAdd, Load() = %d, want 15", got)
	}
}

func TestValueModifyFetchVariants(t *testing.T) {
	v := New[uint32](10)
	if got := v.AddFetch(SeqCst, 5); got != 15 {
		t.Fatalf("AddFetch returned %d, want 15", got)
	}
	if got := v.SubFetch(SeqCst, 3); got != 12 {
		t.Fatalf("SubFetch returned %d, want 12", got)
	}
	v.Store(SeqCst, 0b1100)
	if got := v.AndFetch(SeqCst, 0b1010); got != 0b1000 {
		t.Fatalf("AndFetch returned %#b, want 0b1000", got)
	}
	if got := v.NandFetch(SeqCst, 0b1000); got != ^uint32(0b1000) {
		t.Fatalf("NandFetch returned %#x, want %#x", got, ^uint32(0b1000))
	}
}

func TestValueConcurrentFetchAdd(t *testing.T) {
	v := New[uint64](0)
	const goroutines, perGoroutine = 32, 1000
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				v.FetchAdd(SeqCst, 1)
			}
		}()
	}
	wg.Wait()
	if got, want := v.Load(SeqCst), uint64(goroutines*perGoroutine); got != want {
		t.Fatalf("final counter = %d, want %d", got, want)
	}
}

func TestFlagTestAndSet(t *testing.T) {
	var f Flag
	if f.TestAndSet(SeqCst) {
		t.Fatal("first TestAndSet should report previous value false")
	}
	if !f.TestAndSet(SeqCst) {
		t.Fatal("second TestAndSet should report previous value true")
	}
	f.Clear(SeqCst)
	if f.IsSet(SeqCst) {
		t.Fatal("flag should be clear after Clear")
	}
}
