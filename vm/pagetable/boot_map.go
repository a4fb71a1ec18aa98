package pagetable

import (
	"unsafe"

	"rvkernel/arch/riscv64"
	"rvkernel/kernel"
)

// ErrBadState is returned when BootMap would have to remap an entry that a
// previous call already installed as a leaf. Partial mappings already
// written by the failing call are not rolled back.
var ErrBadState = &kernel.Error{Module: "pagetable", Message: "entry already mapped as a leaf"}

// Allocator is the subset of bootalloc.BootAlloc that BootMap needs: a
// source of fresh, distinct physical pages to use as interior tables, and
// a way to turn a physical address into one BootMap's caller can actually
// dereference right now.
//
// ToVirt exists because BootMap runs in two different addressing regimes
// over the life of one boot: identity (physical == dereferenceable) while
// building the trampoline/swapper tables before paging is enabled, and
// physmap-relative (dereferenceable address = KernelAspaceBase + pa) for
// every call platform.EarlyInit makes afterward, once paging is live and
// there is no longer an identity window. bootalloc.BootAlloc switches
// between the two when kernel/bootstrap.Start calls EnablePhysmap after
// RelocateEnableMMU returns.
type Allocator interface {
	AllocPagePhys() uintptr
	ToVirt(pa uintptr) uintptr
}

// BootMap installs mappings for every byte of [vaddr, vaddr+len) to
// [paddr, paddr+len) with permission word prot, into root. Both vaddr and
// paddr must be page-aligned; len must be a nonzero multiple of PageSize.
//
// root is dereferenced as given; every interior table is reached by
// passing its physical address through alloc.ToVirt, so BootMap works both
// before paging is enabled (identity) and after (physmap-relative).
func BootMap(alloc Allocator, root *Table, vaddr, paddr uintptr, length uintptr, prot Prot) error {
	if length == 0 {
		return nil
	}
	return bootMapLevel(alloc, root, vaddr, paddr, length, prot, 0)
}

func tableAt(va uintptr) *Table {
	return (*Table)(unsafe.Pointer(va))
}

// bootMapLevel implements the recursive algorithm: at each level it either
// installs a leaf (at the deepest level, or earlier when alignment and
// remaining length allow a large leaf), or descends through an existing or
// freshly allocated interior table.
func bootMapLevel(alloc Allocator, table *Table, vaddr, paddr uintptr, length uintptr, prot Prot, level uint8) error {
	var off uintptr
	last := riscv64.Levels() - 1

	for off < length {
		idx := riscv64.LevelIndex(vaddr+off, level)
		entry := table[idx]

		if level == last {
			table[idx] = makeLeafPTE(paddr+off, prot)
			off += riscv64.PageSize
			continue
		}

		if !entry.present() {
			remaining := length - off
			if level > 0 && riscv64.AlignedAtLevel(vaddr+off, level) &&
				riscv64.AlignedAtLevel(paddr+off, level) && remaining >= riscv64.LevelSize(level) {
				table[idx] = makeLeafPTE(paddr+off, prot)
				off += riscv64.LevelSize(level)
				continue
			}

			childPA := alloc.AllocPagePhys()
			riscv64.ZeroPage(alloc.ToVirt(childPA))
			table[idx] = makeInteriorPTE(childPA)
			entry = table[idx]
		} else if entry.isLeaf() {
			return ErrBadState
		}

		child := tableAt(alloc.ToVirt(entry.pfn() << riscv64.PageShift))
		step := riscv64.LevelSize(level)
		chunk := step
		if remaining := length - off; remaining < chunk {
			chunk = remaining
		}
		if err := bootMapLevel(alloc, child, vaddr+off, paddr+off, chunk, prot, level+1); err != nil {
			return err
		}
		off += step
	}

	return nil
}
