// Package aspace implements the minimal VmAspace seed created during early
// init: just enough structure to name and size the kernel's address space
// before a real region tree or heap exists.
package aspace

import "rvkernel/lib/debuglog"

// Kind distinguishes the handful of address space roles the kernel
// recognizes.
type Kind int

const (
	// Kernel is the single, permanent kernel address space.
	Kernel Kind = iota
	// User marks a per-process address space (not constructed during
	// early boot).
	User
	// LowKernel covers very low memory for SMP bootstrap or mexec-style
	// handoffs; exists for API completeness, unused in early boot.
	LowKernel
	// GuestPhysical represents hypervisor guest memory; unused here.
	GuestPhysical
)

// Region is a placeholder for the root VMAR (virtual memory address
// region) tree a full implementation would attach mappings to. Early boot
// only ever needs the empty root, so no child-region bookkeeping exists
// yet.
type Region struct{}

// VmAspace names and bounds one virtual address space.
type VmAspace struct {
	Name string
	Base uintptr
	Size uintptr
	Kind Kind

	Root *Region
}

// New constructs a VmAspace with an attached empty root region.
func New(name string, base, size uintptr, kind Kind) *VmAspace {
	return &VmAspace{
		Name: name,
		Base: base,
		Size: size,
		Kind: kind,
		Root: &Region{},
	}
}

// InitPreheap creates the singleton kernel address space, the only one
// early init needs: base KernelAspaceBase, size KernelAspaceSize.
func InitPreheap(base, size uintptr) *VmAspace {
	ka := New("kernel", base, size, Kernel)
	debuglog.Printf(debuglog.Info, "kernel_aspace_init_pre_heap ok!\n")
	return ka
}
