package riscv64

import "rvkernel/kernel"

// ZeroPage clears a freshly allocated PageSize-aligned page at addr. Used
// by the boot page-table builder before installing a fresh interior table,
// so stale bump-allocator memory never appears as valid PTEs.
func ZeroPage(addr uintptr) {
	kernel.Memset(addr, 0, PageSize)
}

// AlignUp rounds addr up to the nearest multiple of align, which must be a
// power of two.
func AlignUp(addr uintptr, align uintptr) uintptr {
	return (addr + align - 1) &^ (align - 1)
}

// AlignDown rounds addr down to the nearest multiple of align, which must be
// a power of two.
func AlignDown(addr uintptr, align uintptr) uintptr {
	return addr &^ (align - 1)
}

// IsAligned returns true if addr is a multiple of align.
func IsAligned(addr uintptr, align uintptr) bool {
	return addr&(align-1) == 0
}

// RoundUpPage rounds size up to the nearest multiple of PageSize.
func RoundUpPage(size uintptr) uintptr {
	return AlignUp(size, PageSize)
}

// IsPageAligned returns true if addr is page-aligned.
func IsPageAligned(addr uintptr) bool {
	return IsAligned(addr, PageSize)
}
