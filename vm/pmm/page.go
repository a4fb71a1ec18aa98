// Package pmm implements the physical memory page database: per-page
// descriptors, intrusive free lists, arenas built on top of RAM ranges
// discovered at boot, and the node that owns the global free list.
package pmm

import "sync/atomic"

// State is the lifecycle state of a single physical page.
type State uint32

const (
	// Free pages sit on a PmmNode's free list and are available for
	// allocation.
	Free State = iota
	// Wired pages are permanently unavailable: the boot-reserved ranges
	// (the kernel image) and the page arrays themselves.
	Wired
	// Alloc pages have been handed out by an allocator and removed from
	// every free list.
	Alloc
)

// Page is the per-page descriptor. paddr is set once at arena
// construction and never changes; state and loaned are the only fields
// later code mutates, both through atomic operations so the page database
// can eventually be touched from more than one hart without a lock.
//
// next/prev make Page an intrusive doubly-linked list node: a Page is
// either on no list, or on exactly one free list, addressed directly by
// pointer rather than by index. This mirrors lib/list.rs's ListNode
// embedding, adapted to Go's stable backing arrays instead of NonNull.
type Page struct {
	paddr  uintptr
	state  atomic.Uint32
	loaned atomic.Bool

	next *Page
	prev *Page
}

// Paddr returns the page's physical address.
func (p *Page) Paddr() uintptr {
	return p.paddr
}

// State returns the page's current lifecycle state.
func (p *Page) State() State {
	return State(p.state.Load())
}

// SetState updates the page's lifecycle state.
func (p *Page) SetState(s State) {
	p.state.Store(uint32(s))
}

// Loaned reports whether the page is currently loaned out (and therefore
// not a candidate for pmm_alloc_range even while Free).
func (p *Page) Loaned() bool {
	return p.loaned.Load()
}
