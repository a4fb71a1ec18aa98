package riscv64

import (
	"testing"
	"unsafe"

	"rvkernel/arch/riscv64"
	"rvkernel/vm"
	"rvkernel/vm/pagetable"
)

// fakeAlloc hands out pages from real Go memory, so interior tables
// BootMap allocates can be safely zeroed during a hosted test.
type fakeAlloc struct {
	arena []byte
	off   int
}

func newFakeAlloc(pages int) *fakeAlloc {
	return &fakeAlloc{arena: make([]byte, pages*int(riscv64.PageSize)+int(riscv64.PageSize))}
}

func (f *fakeAlloc) AllocPagePhys() uintptr {
	base := riscv64.AlignUp(uintptr(unsafe.Pointer(&f.arena[f.off])), riscv64.PageSize)
	f.off += int(riscv64.PageSize) * 2
	return base
}

func (f *fakeAlloc) ToVirt(pa uintptr) uintptr { return pa }

func TestAddPeriphRangeMapsAndRecords(t *testing.T) {
	ctx := vm.NewBootContext(0, 0)
	alloc := newFakeAlloc(16)
	var root pagetable.Table

	startVirt := ctx.PeriphBaseVirt
	if err := AddPeriphRange(ctx, alloc, &root, 0x1000_0000, riscv64.PageSize); err != nil {
		t.Fatalf("AddPeriphRange: %v", err)
	}

	if ctx.PeriphRangeCount != 1 {
		t.Fatalf("PeriphRangeCount = %d, want 1", ctx.PeriphRangeCount)
	}
	got := ctx.PeriphRanges[0]
	if got.BasePhys != 0x1000_0000 || got.BaseVirt != startVirt || got.Length != riscv64.PageSize {
		t.Fatalf("recorded range = %+v", got)
	}
	if ctx.PeriphBaseVirt != startVirt+riscv64.PageSize {
		t.Fatalf("PeriphBaseVirt not advanced: %#x", ctx.PeriphBaseVirt)
	}
}

func TestAddPeriphRangeRejectsBadAlign(t *testing.T) {
	ctx := vm.NewBootContext(0, 0)
	alloc := newFakeAlloc(4)
	var root pagetable.Table

	if err := AddPeriphRange(ctx, alloc, &root, 0x1001, riscv64.PageSize); err != ErrBadAlign {
		t.Fatalf("got %v, want ErrBadAlign", err)
	}
}

func TestAddPeriphRangeRejectsWhenFull(t *testing.T) {
	ctx := vm.NewBootContext(0, 0)
	alloc := newFakeAlloc(64)
	var root pagetable.Table

	for i := 0; i < vm.MaxPeriphRanges; i++ {
		if err := AddPeriphRange(ctx, alloc, &root, uintptr(i+1)<<20, riscv64.PageSize); err != nil {
			t.Fatalf("range %d: %v", i, err)
		}
	}

	if err := AddPeriphRange(ctx, alloc, &root, 0x9000_0000, riscv64.PageSize); err != ErrOutOfRange {
		t.Fatalf("got %v, want ErrOutOfRange", err)
	}
}
