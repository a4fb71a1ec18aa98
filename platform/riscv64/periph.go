package riscv64

import (
	"rvkernel/arch/riscv64"
	"rvkernel/kernel"
	"rvkernel/lib/debuglog"
	"rvkernel/vm"
	"rvkernel/vm/pagetable"
)

// ErrOutOfRange is returned by AddPeriphRange when the peripheral table is
// already full.
var ErrOutOfRange = &kernel.Error{Module: "platform", Message: "peripheral range table is full"}

// ErrBadAlign is returned by AddPeriphRange when base_phys or length is not
// page-aligned.
var ErrBadAlign = &kernel.Error{Module: "platform", Message: "peripheral range is not page-aligned"}

// AddPeriphRange maps [base_phys, base_phys+length) as MMIO at the next free
// slot of the peripheral virtual window and records the mapping in
// ctx.PeriphRanges. PAGE_IOREMAP equals PAGE_KERNEL on this architecture:
// RISC-V does not yet specify the PMA overrides a real ioremap would set.
func AddPeriphRange(ctx *vm.BootContext, alloc pagetable.Allocator, root *pagetable.Table, basePhys, length uintptr) error {
	if ctx.PeriphRangeCount >= vm.MaxPeriphRanges {
		return ErrOutOfRange
	}
	if !riscv64.IsPageAligned(basePhys) || !riscv64.IsPageAligned(length) {
		return ErrBadAlign
	}

	baseVirt := ctx.PeriphBaseVirt
	if err := pagetable.BootMap(alloc, root, baseVirt, basePhys, length, pagetable.PageIoremap); err != nil {
		return err
	}

	ctx.PeriphRanges[ctx.PeriphRangeCount] = vm.PeriphRange{
		BasePhys: basePhys,
		BaseVirt: baseVirt,
		Length:   length,
	}
	ctx.PeriphRangeCount++
	ctx.PeriphBaseVirt += length

	debuglog.Printf(debuglog.Info, "periph: mapped %x -> %x (%x bytes)\n", baseVirt, basePhys, length)
	return nil
}
