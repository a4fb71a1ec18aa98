package riscv64

import (
	"rvkernel/arch/riscv64"
	"rvkernel/lib/debuglog"
	"rvkernel/vm"
	"rvkernel/vm/pagetable"
	"rvkernel/vm/pmm"
)

// lowPeriphBase and lowPeriphSize cover the low-address MMIO window every
// board built on this platform shares (UART, PLIC, CLINT and friends), the
// architecture-injected range spec.md's device-tree scan step adds on top
// of whatever the DTB itself describes.
const (
	lowPeriphBase = uintptr(0)
	lowPeriphSize = uintptr(0x4000_0000)
)

// EarlyInit runs the full platform bringup sequence once the boot hart is
// executing under the swapper root with a live physmap: reserve the kernel
// image, scan the device tree, map the architecture's low peripheral
// window, build one PmmArena per discovered RAM range, then wire every
// boot-reserved range out of the allocatable pool.
//
// alloc and root are the same boot allocator and page table the kernel
// image and physmap were mapped with; arenas and peripheral ranges reuse
// them rather than starting a second boot-time mapping context.
func EarlyInit(ctx *vm.BootContext, alloc pagetable.Allocator, root *pagetable.Table, kernelBasePhys, kernelSize uintptr) error {
	if err := ctx.Reserve.Add(kernelBasePhys, kernelSize); err != nil {
		return err
	}

	cmdline, ranges, count, err := scanDTB(ctx)
	if err != nil {
		return err
	}
	_ = cmdline // logged by scanDTB, then discarded; BootContext has no field for it

	if err := AddPeriphRange(ctx, alloc, root, lowPeriphBase, lowPeriphSize); err != nil {
		return err
	}

	placer := &bootPlacer{ctx: ctx, alloc: alloc, root: root}
	for i := 0; i < count; i++ {
		r := ranges[i]
		if r.Type != vm.RAM || r.Length == 0 {
			continue
		}
		ctx.PmmNode.AddArena(pmm.ArenaInfo{
			Name: "ram",
			Base: r.Paddr,
			Size: r.Length,
		}, placer)
	}

	for i := 0; i < ctx.Reserve.Len(); i++ {
		pa, length := ctx.Reserve.Range(i)
		pages := riscv64.RoundUpPage(length) / riscv64.PageSize
		if err := ctx.PmmNode.AllocRange(pa, pages); err != nil {
			return err
		}
	}

	debuglog.Printf(debuglog.Info, "platform_early_init ok!\n")
	return nil
}
