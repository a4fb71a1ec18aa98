package aspace

import "testing"

func TestInitPreheapCreatesKernelAspace(t *testing.T) {
	ka := InitPreheap(0xFFFF000000000000, 0x1000000000)
	if ka.Name != "kernel" {
		t.Fatalf("Name = %q, want kernel", ka.Name)
	}
	if ka.Kind != Kernel {
		t.Fatalf("Kind = %v, want Kernel", ka.Kind)
	}
	if ka.Root == nil {
		t.Fatalf("Root region not attached")
	}
}
