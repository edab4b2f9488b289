package concurrentptr

import "testing"

func TestPtrSetGetAndCounter(t *testing.T) {
	a, b, c := uint16(1), uint16(2), uint16(3)

	p := New(&a)
	if got := p.Get(); got != &a {
		t.Fatalf("Get() = %p, want %p", got, &a)
	}
	before := p.GetCounter()

	p.Set(&b)
	p.Set(&c)
	p.Set(&a)

	if got := p.Get(); got != &a {
		t.Fatalf("Get() after three Sets = %p, want %p", got, &a)
	}
	after := p.GetCounter()
	if before == 0 && after == 0 {
		t.Skip("LL/SC backend reports no counter")
	}
	if after-before != 3 {
		t.Fatalf("counter advanced by %d, want 3", after-before)
	}
}
