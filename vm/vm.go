// Package vm owns the types that flow between the platform orchestrator
// and the page database during early init: the kernel physmap, the
// boot-time memory-range record, and the boot context every early-init
// collaborator is threaded through.
package vm

import (
	"rvkernel/arch/riscv64"
	"rvkernel/vm/aspace"
	"rvkernel/vm/bootreserve"
	"rvkernel/vm/pmm"
)

// physmapBasePhys is the physical address the linear physmap window
// starts covering; always zero on this architecture.
const physmapBasePhys = uintptr(0)

// PaddrToPhysmap translates a physical address into its linear physmap
// virtual address: pa - physmapBasePhys + KernelAspaceBase.
func PaddrToPhysmap(pa uintptr) uintptr {
	return pa - physmapBasePhys + riscv64.KernelAspaceBase
}

// MemRangeType classifies a ZBIMemRange.
type MemRangeType int

const (
	// RAM marks a range of usable system memory, discovered from the
	// device tree's memory nodes.
	RAM MemRangeType = iota
	// Peripheral marks a range architecture code injects to cover
	// low-address MMIO rather than usable RAM.
	Peripheral
)

// ZBIMemRange is one physical memory range discovered during early init,
// named for the zircon boot image record it plays the same role as.
type ZBIMemRange struct {
	Type   MemRangeType
	Paddr  uintptr
	Length uintptr
}

// MaxPeriphRanges bounds the peripheral range list, matching the fixed
// capacity the reserve list and arena list also use before a heap exists.
const MaxPeriphRanges = 4

// PeriphRange records one MMIO window mapped through AddPeriphRange.
type PeriphRange struct {
	BasePhys uintptr
	BaseVirt uintptr
	Length   uintptr
}

// BootContext carries every piece of state early init collaborators share:
// the winning hart's id and the DTB physical address handed to it by
// firmware, the boot-reserve list, the peripheral range table, the single
// PmmNode, and the kernel address space created at the end of early init.
type BootContext struct {
	HartID uint64
	DTBPA  uintptr

	Reserve bootreserve.List

	PeriphRanges    [MaxPeriphRanges]PeriphRange
	PeriphRangeCount int
	PeriphBaseVirt  uintptr

	PmmNode *pmm.PmmNode

	KernelAspace *aspace.VmAspace
}

// NewBootContext returns a BootContext for the given winning hart and DTB
// physical address, with an empty PmmNode and the peripheral window
// starting immediately above the physmap window.
func NewBootContext(hartid uint64, dtbPA uintptr) *BootContext {
	return &BootContext{
		HartID: hartid,
		DTBPA:  dtbPA,
		// Peripheral ranges are carved out of the address space just
		// above the physmap window, below the kernel image proper.
		PeriphBaseVirt: riscv64.KernelAspaceBase + riscv64.ArchPhysmapSize,
		PmmNode:        pmm.NewNode(),
	}
}
