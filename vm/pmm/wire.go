package pmm

import (
	"rvkernel/arch/riscv64"
	"rvkernel/kernel"
)

// ErrNotFound is returned by AllocRange when fewer than the requested
// number of pages could be secured starting at pa. Per the open question
// this leaves unresolved in the original design, the pages already pulled
// off the free list during a failing call are left Wired rather than
// returned: a half-wired range is always safe to leave reserved, since the
// range it came from was about to be wired anyway.
var ErrNotFound = &kernel.Error{Module: "pmm", Message: "fewer pages than requested are free in this range"}

// AllocRange walks pa, pa+PageSize, ... for count pages, and for each one
// that is Free and not loaned, unlinks it from the node's free list and
// marks it Wired. Used once per boot-reserve range during early init to
// remove reserved physical memory from the allocatable pool.
func (n *PmmNode) AllocRange(pa uintptr, count uintptr) error {
	secured := uintptr(0)

	for i := uintptr(0); i < count; i++ {
		p := n.PageAt(pa + i*riscv64.PageSize)
		if p == nil || p.State() != Free || p.Loaned() {
			continue
		}

		n.removeFree(p)
		p.SetState(Wired)
		secured++
	}

	if secured < count {
		return ErrNotFound
	}
	return nil
}
