package vm

import (
	"testing"

	"rvkernel/arch/riscv64"
)

func TestPaddrToPhysmapRoundTrip(t *testing.T) {
	pa := uintptr(0x1230000)
	va := PaddrToPhysmap(pa)

	if va != riscv64.KernelAspaceBase+pa {
		t.Fatalf("PaddrToPhysmap(%#x) = %#x, want %#x", pa, va, riscv64.KernelAspaceBase+pa)
	}
}

func TestNewBootContextSeedsPmmNode(t *testing.T) {
	ctx := NewBootContext(0, 0x82000000)
	if ctx.PmmNode == nil {
		t.Fatalf("PmmNode not initialized")
	}
	if ctx.HartID != 0 || ctx.DTBPA != 0x82000000 {
		t.Fatalf("hartid/dtbpa not recorded: %+v", ctx)
	}
}
