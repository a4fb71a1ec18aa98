// Package kmain is the single orchestration entry point reached once the
// boot hart is running under the final (swapper) mapping with paging
// enabled. It owns the ordering of every early-init step this repository
// implements, mirroring the original implementation's lk_main.
package kmain

import (
	"rvkernel/arch/riscv64"
	"rvkernel/kernel"
	"rvkernel/lib/debuglog"
	platform "rvkernel/platform/riscv64"
	"rvkernel/vm"
	"rvkernel/vm/aspace"
	"rvkernel/vm/pagetable"
)

var errMainReturned = &kernel.Error{Module: "kmain", Message: "Main returned"}

// Main runs the platform bringup sequence and constructs the kernel's
// preheap address-space singleton. hartid and dtbPA are the values the
// boot hart captured in entry_riscv64.s before paging was enabled; alloc
// and root are the same boot allocator and swapper root table
// kernel/bootstrap.Start built the final mapping with, reused here rather
// than opening a second boot-time mapping context; basePhys/endPhys are
// the kernel image's own physical load range, reserved before anything
// else touches the page database.
//
// Main never returns in practice: the last thing a real boot does past
// this point is hand off to the scheduler, which is out of this
// repository's scope. Falling off the end here is treated as fatal, the
// same way the original implementation's lk_main never returning from
// thread_exit would be.
func Main(hartid uint64, dtbPA uintptr, alloc pagetable.Allocator, root *pagetable.Table, basePhys, endPhys uintptr) {
	debuglog.Printf(debuglog.Always, "\nbooting on hart %d, dtb @ %x\n", hartid, dtbPA)

	ctx := vm.NewBootContext(hartid, dtbPA)
	if err := platform.EarlyInit(ctx, alloc, root, basePhys, endPhys-basePhys); err != nil {
		debuglog.Panic(err)
	}

	ctx.KernelAspace = aspace.InitPreheap(riscv64.KernelAspaceBase, riscv64.KernelAspaceSize)

	debuglog.Printf(debuglog.Info, "early init complete, %d pages free\n", ctx.PmmNode.FreeCount())
	debuglog.Printf(debuglog.Always, "scheduler hand-off is out of scope; halting\n")

	debuglog.Panic(errMainReturned)
}
