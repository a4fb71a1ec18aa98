package pmm

import "testing"

func TestFreeListPushPopOrder(t *testing.T) {
	var l FreeList
	a := &Page{paddr: 0x1000}
	b := &Page{paddr: 0x2000}
	c := &Page{paddr: 0x3000}

	l.PushBack(a)
	l.PushBack(b)
	l.PushBack(c)

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}

	for _, want := range []*Page{a, b, c} {
		got := l.PopFront()
		if got != want {
			t.Fatalf("PopFront() = %#v, want %#v", got, want)
		}
	}
	if l.Len() != 0 {
		t.Fatalf("Len() after draining = %d, want 0", l.Len())
	}
	if l.PopFront() != nil {
		t.Fatalf("PopFront() on empty list should return nil")
	}
}

func TestFreeListRemoveMiddle(t *testing.T) {
	var l FreeList
	a := &Page{paddr: 0x1000}
	b := &Page{paddr: 0x2000}
	c := &Page{paddr: 0x3000}
	l.PushBack(a)
	l.PushBack(b)
	l.PushBack(c)

	l.Remove(b)
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if got := l.PopFront(); got != a {
		t.Fatalf("PopFront() = %#v, want a", got)
	}
	if got := l.PopFront(); got != c {
		t.Fatalf("PopFront() = %#v, want c", got)
	}
}

func TestFreeListAppend(t *testing.T) {
	var l1, l2 FreeList
	a := &Page{paddr: 0x1000}
	b := &Page{paddr: 0x2000}
	l1.PushBack(a)
	l2.PushBack(b)

	l1.Append(&l2)
	if l1.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l1.Len())
	}
	if l2.Len() != 0 {
		t.Fatalf("source list Len() = %d, want 0 after Append", l2.Len())
	}
	if got := l1.PopFront(); got != a {
		t.Fatalf("PopFront() = %#v, want a", got)
	}
	if got := l1.PopFront(); got != b {
		t.Fatalf("PopFront() = %#v, want b", got)
	}
}
