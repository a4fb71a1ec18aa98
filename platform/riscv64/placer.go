package riscv64

import (
	"rvkernel/vm"
	"rvkernel/vm/pagetable"
)

// bootPlacer implements pmm.Placer: it finds a gap inside an arena that
// avoids every range already in the boot-reserve list, maps it through the
// physmap, and hands PmmArena.Init the resulting virtual address. The gap
// is not added to the reserve list: Init marks the array's pages Wired
// itself, and the wiring pass over the reserve list only accepts Free pages. One placer is shared across every arena constructed during
// early init, since all of them draw from the same reserve list, boot
// allocator and root table.
type bootPlacer struct {
	ctx   *vm.BootContext
	alloc pagetable.Allocator
	root  *pagetable.Table
}

// PlacePageArray finds size bytes inside [base, base+arenaSize) that avoid
// every reserved range, maps it PAGE_KERNEL through the physmap, and
// returns its virtual address.
func (p *bootPlacer) PlacePageArray(base, arenaSize, size uintptr) (uintptr, error) {
	pa, err := p.ctx.Reserve.Search(base, arenaSize, size)
	if err != nil {
		return 0, err
	}

	va := vm.PaddrToPhysmap(pa)
	if err := pagetable.BootMap(p.alloc, p.root, va, pa, size, pagetable.PageKernel); err != nil {
		return 0, err
	}

	return va, nil
}
