package pmm

import (
	"unsafe"

	"rvkernel/arch/riscv64"
	"rvkernel/kernel"
	"rvkernel/lib/debuglog"
)

// ErrLackBuf is returned when an arena is too small to hold the page-array
// descriptors for its own pages.
var ErrLackBuf = &kernel.Error{Module: "pmm", Message: "arena too small to hold its own page array"}

// ErrBadAlign is returned when an arena's base or size is not page-aligned.
var ErrBadAlign = &kernel.Error{Module: "pmm", Message: "arena base or size is not page-aligned"}

// ArenaInfo describes a RAM range discovered by the platform layer before
// an arena is constructed over it.
type ArenaInfo struct {
	Name string
	Base uintptr
	Size uintptr
}

// PmmArena owns the Page descriptors for one contiguous RAM range.
type PmmArena struct {
	info  ArenaInfo
	pages []Page
}

// Reserved describes a single physical range that must not be handed out
// as free during arena construction, the shape arena Init needs from the
// boot-reserve list without importing vm/bootreserve directly.
type Reserved struct {
	PA  uintptr
	Len uintptr
}

// Placer finds a free sub-region for the arena's own page array, and
// maps it into the physmap. Implemented by the platform orchestrator,
// which owns both the boot-reserve list and the boot page tables.
type Placer interface {
	// PlacePageArray finds size bytes inside [base, base+arenaSize) that
	// avoid every reserved range, maps it through the physmap, and returns
	// its virtual address.
	PlacePageArray(base, arenaSize, size uintptr) (uintptr, error)
}

func (a *PmmArena) Name() string { return a.info.Name }
func (a *PmmArena) Base() uintptr { return a.info.Base }
func (a *PmmArena) Size() uintptr { return a.info.Size }

// Init lays out the page array for the arena: computes page_count and
// page_array_size, places and maps the array via placer, then initializes
// every Page descriptor, marking the ones backing the array itself WIRED
// and returning the rest in a fresh free list.
func (a *PmmArena) Init(placer Placer) (*FreeList, error) {
	debuglog.Printf(debuglog.Info, "PMM: adding arena '%s' base %x size %x\n", a.info.Name, a.info.Base, a.info.Size)

	if !riscv64.IsPageAligned(a.info.Base) || !riscv64.IsPageAligned(a.info.Size) || a.info.Size == 0 {
		return nil, ErrBadAlign
	}

	pageCount := a.info.Size / riscv64.PageSize
	pageArraySize := riscv64.RoundUpPage(pageCount * unsafe.Sizeof(Page{}))

	if pageArraySize >= a.info.Size {
		debuglog.Printf(debuglog.Critical, "PMM: arena too small to hold page array (%x)\n", a.info.Size)
		return nil, ErrLackBuf
	}

	debuglog.Printf(debuglog.Info, "page array size %x\n", pageArraySize)

	arrayVA, err := placer.PlacePageArray(a.info.Base, a.info.Size, pageArraySize)
	if err != nil {
		return nil, err
	}

	a.pages = pageArrayAt(arrayVA, pageCount)

	arrayPageCount := pageArraySize / riscv64.PageSize
	arrayStartIndex := pageCount - arrayPageCount
	arrayEndIndex := pageCount

	free := &FreeList{}
	for i := uintptr(0); i < pageCount; i++ {
		p := &a.pages[i]
		p.paddr = a.info.Base + i*riscv64.PageSize
		if i >= arrayStartIndex && i < arrayEndIndex {
			p.SetState(Wired)
		} else {
			p.SetState(Free)
			free.PushBack(p)
		}
	}

	return free, nil
}

// PageAt returns the descriptor for the page containing pa, or nil if pa
// does not fall inside this arena.
func (a *PmmArena) PageAt(pa uintptr) *Page {
	if pa < a.info.Base || pa >= a.info.Base+a.info.Size {
		return nil
	}
	idx := (pa - a.info.Base) / riscv64.PageSize
	return &a.pages[idx]
}
