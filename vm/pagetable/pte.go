// Package pagetable implements the boot-time page table builder: a
// recursive mapper that walks an Sv39/Sv48/Sv57 tree and installs the
// largest leaf mapping alignment allows, allocating intermediate tables
// from a bootalloc.BootAlloc.
package pagetable

import "rvkernel/arch/riscv64"

// Prot is a permission word applied to every leaf a single BootMap call
// installs, in the encoding the architecture's PTE format uses directly.
type Prot uint64

// PTE flag bits, matching the RISC-V Sv39/48/57 encoding: bits [9:0] carry
// V, R, W, X, U, G, A, D; bits [XLEN-1:10] carry the physical frame number.
const (
	flagValid    Prot = 1 << 0
	flagRead     Prot = 1 << 1
	flagWrite    Prot = 1 << 2
	flagExec     Prot = 1 << 3
	flagUser     Prot = 1 << 4
	flagGlobal   Prot = 1 << 5
	flagAccessed Prot = 1 << 6
	flagDirty    Prot = 1 << 7

	pfnShift = 10
)

// Exported permission words. PageKernel is the default RW mapping used for
// the physmap and boot heap; PageKernelExec additionally sets X for the
// kernel image's text; PageIoremap has the same value as PageKernel (this
// PTE encoding carries no caching attributes) but is kept as a separate
// name so device mappings can diverge from PageKernel later without
// touching call sites.
const (
	PageTable      Prot = flagValid
	PageKernel     Prot = flagValid | flagRead | flagWrite | flagGlobal | flagAccessed | flagDirty
	PageKernelExec Prot = PageKernel | flagExec
	PageIoremap    Prot = PageKernel
)

// pte is a single 64-bit page-table entry. A zero pte is an absent entry.
type pte uint64

func (p pte) present() bool {
	return p&pte(flagValid) != 0
}

// isLeaf reports whether p is a leaf (any of R/W/X set) as opposed to an
// interior pointer to the next level table.
func (p pte) isLeaf() bool {
	return p&pte(flagRead|flagWrite|flagExec) != 0
}

func (p pte) pfn() uintptr {
	return uintptr(p >> pfnShift)
}

func makeLeafPTE(paddr uintptr, prot Prot) pte {
	return pte(prot) | pte(paddr>>riscv64.PageShift)<<pfnShift
}

func makeInteriorPTE(tablePA uintptr) pte {
	return pte(PageTable) | pte(tablePA>>riscv64.PageShift)<<pfnShift
}

// Table is a single page-aligned level of the tree: PageTableEntries
// 64-bit words. Root tables (the swapper and trampoline directories) are
// Table values embedded directly in .bss by kernel/bootstrap; interior tables
// are allocated from the boot allocator.
type Table [riscv64.PageTableEntries]pte
