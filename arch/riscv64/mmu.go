package riscv64

import _ "unsafe" // for go:linkname

// The functions below have no Go body; their implementations live in
// mmu_riscv64.s, following the same declare-in-Go/implement-in-asm split
// csr.go uses for the other privileged primitives. They are exported
// because their caller, kernel/bootstrap.Start, lives above vm/pagetable
// (which imports this package), not inside it.

// BootParams returns the hartid and dtb physical address rawEntry saved to
// bootHartID/bootDTBPA before it stopped trusting A0/A1.
func BootParams() (hartid uint64, dtbPA uintptr)

// ImageBounds returns the kernel image's physical load range
// [basePhys, endPhys), read from the linker-provided __code_start/_end
// symbols.
func ImageBounds() (basePhys, endPhys uintptr)

// SetTrampolineSATP and SetSwapperSATP populate the SATP images
// RelocateEnableMMU installs, computed by kernel/bootstrap.Start once the
// boot page tables are built.
func SetTrampolineSATP(satp uint64)
func SetSwapperSATP(satp uint64)

// RelocateEnableMMU enables paging and relocates execution into the
// kernel's virtual address space; implemented in trampoline_riscv64.s.
func RelocateEnableMMU()

// parkSecondaryHart is implemented in entry_riscv64.s, a Go call target
// for anything that needs to park a hart outside of the lottery-loser
// path baked into rawEntry.
func parkSecondaryHart()

// startKernel is rawEntry's sole Go call target, still running in physical
// addressing mode with no heap and no scheduler. Its real implementation
// is kernel/bootstrap.Start: kernel/bootstrap builds the boot page tables
// with vm/pagetable, which itself imports this package for PTE/level
// arithmetic, so a Go-level import from here would cycle. go:linkname ties
// this bodiless declaration directly to kernel/bootstrap.Start's compiled
// code instead, the same mechanism runtime.main uses to reach main.main
// without importing package main. cmd/kernel imports kernel/bootstrap so
// the linker still includes it in the build.
//
//go:linkname startKernel rvkernel/kernel/bootstrap.Start
func startKernel()

// BuildSATP encodes a SATP image selecting the configured paging mode and
// rootPA as the root page table's physical frame, ASID 0.
func BuildSATP(rootPA uintptr) uint64 {
	return satpMode() | uint64(rootPA>>PageShift)
}

// SATPRootPA extracts the physical frame address of a SATP image's root
// page table, the inverse of BuildSATP used by tests and diagnostics.
func SATPRootPA(satp uint64) uintptr {
	const ppnMask = uint64(1)<<44 - 1
	return uintptr(satp&ppnMask) << PageShift
}
