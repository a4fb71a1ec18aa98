// Package bootstrap implements start_kernel: the Go code rawEntry calls
// directly, still running in physical addressing mode with interrupts
// masked, no heap, and no scheduler. It builds the boot page tables,
// enables paging, and hands off to kernel/kmain.Main.
//
// This package sits above vm/pagetable (which itself imports
// arch/riscv64 for PTE/level arithmetic), so arch/riscv64 cannot import
// it directly; rawEntry reaches Start via go:linkname on arch/riscv64's
// startKernel declaration instead. See arch/riscv64/mmu.go.
package bootstrap

import (
	"unsafe"

	"rvkernel/arch/riscv64"
	"rvkernel/kernel/kmain"
	"rvkernel/lib/debuglog"
	"rvkernel/vm/bootalloc"
	"rvkernel/vm/pagetable"
)

// trampolineRoot and swapperRoot are the two boot-time root page tables.
// Table-valued package variables, not pointers, so they live in .bss at a
// fixed address known at link time: taking their address before paging is
// enabled yields their physical address directly, since code running this
// early uses PC-relative addressing that never depended on where the
// image was actually loaded.
var (
	trampolineRoot pagetable.Table
	swapperRoot    pagetable.Table
)

func physAddr(t *pagetable.Table) uintptr {
	return uintptr(unsafe.Pointer(t))
}

// Start builds the boot mappings, enables paging, and calls kmain.Main.
// It never returns: RelocateEnableMMU transfers execution into the high
// half and Main itself only returns via debuglog.Panic.
func Start() {
	hartid, dtbPA := riscv64.BootParams()
	basePhys, endPhys := riscv64.ImageBounds()
	imageSize := endPhys - basePhys

	alloc := bootalloc.New(endPhys)

	// Trampoline mapping: the kernel image at both its physical load
	// address and KernelBase. Used only to bridge the instant paging is
	// enabled to the instant PC lands in the high half.
	if err := pagetable.BootMap(alloc, &trampolineRoot, basePhys, basePhys, imageSize, pagetable.PageKernelExec); err != nil {
		debuglog.Panic(err)
	}
	if err := pagetable.BootMap(alloc, &trampolineRoot, riscv64.KernelBase, basePhys, imageSize, pagetable.PageKernelExec); err != nil {
		debuglog.Panic(err)
	}

	// Swapper mapping: the kernel's permanent address space. No identity
	// window; the linear physmap covers all of physical memory instead.
	if err := pagetable.BootMap(alloc, &swapperRoot, riscv64.KernelAspaceBase, 0, riscv64.ArchPhysmapSize, pagetable.PageKernel); err != nil {
		debuglog.Panic(err)
	}
	if err := pagetable.BootMap(alloc, &swapperRoot, riscv64.KernelBase, basePhys, imageSize, pagetable.PageKernelExec); err != nil {
		debuglog.Panic(err)
	}

	bootHeapVirt := riscv64.KernelBase + imageSize
	bootHeapPhys := endPhys
	if err := pagetable.BootMap(alloc, &swapperRoot, bootHeapVirt, bootHeapPhys, riscv64.BootHeapSize, pagetable.PageKernel); err != nil {
		debuglog.Panic(err)
	}

	// Soft check: the boot page tables themselves are allocated out of
	// the same cursor starting at endPhys, so they occupy the front of
	// the BootHeapSize window. If table construction alone already
	// consumed past the window, the tables beyond it lie outside the
	// range mapped above as boot heap. spec.md leaves the
	// BootHeapSize/mapping-size relationship "asserted but never
	// validated"; a warning matches that without inventing a hard
	// failure path.
	if used := alloc.Cursor() - bootHeapPhys; used > riscv64.BootHeapSize {
		debuglog.Printf(debuglog.Warn, "boot page tables consumed %x bytes, exceeding BootHeapSize %x\n", used, riscv64.BootHeapSize)
	}
	alloc.Mark(bootHeapPhys, riscv64.BootHeapSize)

	riscv64.SetTrampolineSATP(riscv64.BuildSATP(physAddr(&trampolineRoot)))
	riscv64.SetSwapperSATP(riscv64.BuildSATP(physAddr(&swapperRoot)))

	riscv64.RelocateEnableMMU()

	// Paging is live and PC is running out of the high half. alloc's
	// physical addresses are no longer dereferenceable directly; switch
	// it to translating through the physmap before anything calls back
	// into pagetable.BootMap.
	alloc.EnablePhysmap()

	kmain.Main(hartid, dtbPA, alloc, &swapperRoot, basePhys, endPhys)
}
