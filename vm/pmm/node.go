package pmm

import (
	"sync/atomic"

	"rvkernel/lib/debuglog"
)

// MaxArenas bounds the number of arenas a single node tracks, matching the
// fixed-capacity Vec the original implementation pre-sizes with
// MAX_ARENAS rather than growing unbounded during early boot.
const MaxArenas = 16

// PmmNode owns every arena and the global free list built from them. There
// is exactly one instance for the lifetime of this kernel; NUMA-aware
// multi-node configurations are out of scope.
//
// arenas is a fixed-capacity array rather than a growable slice: AddArena
// runs before vm_init_preheap, and an append that outgrows its backing
// array would call into runtime.mallocgc before any heap exists, the same
// hazard device/fdt's scanner and platform/riscv64.scanDTB are written to
// avoid.
type PmmNode struct {
	arenas       [MaxArenas]*PmmArena
	arenaCount   int
	cumulativeSz uintptr

	freeCount atomic.Uint64
	freeList  FreeList
}

// NewNode returns an empty PmmNode ready to accept arenas.
func NewNode() *PmmNode {
	return &PmmNode{}
}

// AddArena constructs a PmmArena over info via placer, and on success
// inserts it into the node's arena list in ascending base order and splices
// its free pages onto the node's free list. A construction failure is
// logged and swallowed rather than propagated: one bad arena should not
// abort bringup of an otherwise usable machine.
func (n *PmmNode) AddArena(info ArenaInfo, placer Placer) {
	if n.arenaCount >= MaxArenas {
		debuglog.Printf(debuglog.Critical, "PMM: pmm_add_arena failed: too many arenas\n")
		return
	}

	arena := &PmmArena{info: info}

	free, err := arena.Init(placer)
	if err != nil {
		debuglog.Printf(debuglog.Critical, "PMM: pmm_add_arena failed %v\n", err)
		return
	}

	debuglog.Printf(debuglog.Info, "Adding arena '%s' ...\n", arena.Name())

	n.cumulativeSz += arena.Size()
	n.AddFreePages(free)

	pos := n.arenaCount
	for i := 0; i < n.arenaCount; i++ {
		if arena.Base() < n.arenas[i].Base() {
			pos = i
			break
		}
	}
	copy(n.arenas[pos+1:n.arenaCount+1], n.arenas[pos:n.arenaCount])
	n.arenas[pos] = arena
	n.arenaCount++
}

// AddFreePages atomically bumps free_count and splices list onto the
// node's free list, draining list in the process.
func (n *PmmNode) AddFreePages(list *FreeList) {
	n.freeCount.Add(uint64(list.Len()))
	n.freeList.Append(list)

	debuglog.Printf(debuglog.Info, "free count now %d\n", n.freeCount.Load())
}

// FreeCount returns the number of pages currently on the free list.
func (n *PmmNode) FreeCount() uint64 {
	return n.freeCount.Load()
}

// PageAt locates the descriptor for the page containing pa by walking the
// arena list, or returns nil if pa is not covered by any arena.
func (n *PmmNode) PageAt(pa uintptr) *Page {
	for i := 0; i < n.arenaCount; i++ {
		if p := n.arenas[i].PageAt(pa); p != nil {
			return p
		}
	}
	return nil
}

// removeFree unlinks p from the node's free list; used only by the wiring
// pass, which has already confirmed p is Free and not loaned.
func (n *PmmNode) removeFree(p *Page) {
	n.freeList.Remove(p)
	n.freeCount.Add(^uint64(0))
}
