package pmm

// FreeList is an intrusive doubly-linked list of *Page, grounded on the
// teacher's list.rs style (push/pop at the tail, whole-list append) but
// addressing nodes directly since every Page already lives at a stable
// address in its arena's page array.
type FreeList struct {
	head *Page
	tail *Page
	len  int
}

// PushBack appends p to the tail of the list. p must not already be linked
// into any list.
func (l *FreeList) PushBack(p *Page) {
	p.prev = l.tail
	p.next = nil
	if l.tail != nil {
		l.tail.next = p
	} else {
		l.head = p
	}
	l.tail = p
	l.len++
}

// PopFront removes and returns the page at the head of the list, or nil if
// the list is empty.
func (l *FreeList) PopFront() *Page {
	p := l.head
	if p == nil {
		return nil
	}
	l.head = p.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	p.next, p.prev = nil, nil
	l.len--
	return p
}

// Remove unlinks p from the list. p must currently be a member.
func (l *FreeList) Remove(p *Page) {
	if p.prev != nil {
		p.prev.next = p.next
	} else {
		l.head = p.next
	}
	if p.next != nil {
		p.next.prev = p.prev
	} else {
		l.tail = p.prev
	}
	p.next, p.prev = nil, nil
	l.len--
}

// Append moves every element of other onto the tail of l, leaving other
// empty.
func (l *FreeList) Append(other *FreeList) {
	if other.head == nil {
		return
	}
	if l.tail == nil {
		l.head = other.head
	} else {
		l.tail.next = other.head
		other.head.prev = l.tail
	}
	l.tail = other.tail
	l.len += other.len
	other.head, other.tail, other.len = nil, nil, 0
}

// Len reports the number of pages currently linked into the list.
func (l *FreeList) Len() int {
	return l.len
}
