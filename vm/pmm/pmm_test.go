package pmm

import (
	"rvkernel/arch/riscv64"
	"testing"
	"unsafe"
)

// fakePlacer backs the page array with real Go memory, simulating the
// physmap mapping the platform layer would otherwise install.
type fakePlacer struct {
	backing []byte
}

func (f *fakePlacer) PlacePageArray(base, arenaSize, size uintptr) (uintptr, error) {
	f.backing = make([]byte, size+uintptr(unsafe.Sizeof(Page{})))
	return riscv64.AlignUp(uintptr(unsafe.Pointer(&f.backing[0])), 8), nil
}

func TestArenaInitWiresOwnPageArray(t *testing.T) {
	base := uintptr(0x80000000)
	size := riscv64.PageSize * 64

	n := NewNode()
	n.AddArena(ArenaInfo{Name: "ram0", Base: base, Size: size}, &fakePlacer{})

	if n.arenaCount != 1 {
		t.Fatalf("expected one arena, got %d", n.arenaCount)
	}

	arena := n.arenas[0]
	pageCount := size / riscv64.PageSize
	wiredCount := 0
	for i := uintptr(0); i < pageCount; i++ {
		if arena.pages[i].State() == Wired {
			wiredCount++
		}
	}
	if wiredCount == 0 {
		t.Fatalf("expected some pages wired for the page array, got none")
	}
	if uint64(int(pageCount)-wiredCount) != n.FreeCount() {
		t.Fatalf("free count %d does not match unwired page count %d", n.FreeCount(), int(pageCount)-wiredCount)
	}
}

func TestArenaInitRejectsTooSmall(t *testing.T) {
	var arena PmmArena
	arena.info = ArenaInfo{Name: "tiny", Base: 0x1000, Size: riscv64.PageSize}
	if _, err := arena.Init(&fakePlacer{}); err != ErrLackBuf {
		t.Fatalf("Init on undersized arena: got %v, want ErrLackBuf", err)
	}
}

func TestAllocRangeWiresFreePages(t *testing.T) {
	base := uintptr(0x80000000)
	size := riscv64.PageSize * 64

	n := NewNode()
	n.AddArena(ArenaInfo{Name: "ram0", Base: base, Size: size}, &fakePlacer{})

	before := n.FreeCount()
	if err := n.AllocRange(base, 4); err != nil {
		t.Fatalf("AllocRange: %v", err)
	}
	if n.FreeCount() != before-4 {
		t.Fatalf("FreeCount = %d, want %d", n.FreeCount(), before-4)
	}

	for i := uintptr(0); i < 4; i++ {
		p := n.PageAt(base + i*riscv64.PageSize)
		if p.State() != Wired {
			t.Fatalf("page %d not wired after AllocRange", i)
		}
	}
}

func TestAllocRangeFailsWhenAlreadyWired(t *testing.T) {
	base := uintptr(0x80000000)
	size := riscv64.PageSize * 64

	n := NewNode()
	n.AddArena(ArenaInfo{Name: "ram0", Base: base, Size: size}, &fakePlacer{})

	if err := n.AllocRange(base, 4); err != nil {
		t.Fatalf("AllocRange: %v", err)
	}
	if err := n.AllocRange(base, 4); err != ErrNotFound {
		t.Fatalf("re-AllocRange over wired pages: got %v, want ErrNotFound", err)
	}
}
