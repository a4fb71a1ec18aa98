// Command kernel is never actually executed as a normal Go program: the
// image's real entry point is arch/riscv64's rawEntry, loaded directly by
// firmware. This package exists only so the Go linker includes
// kernel/bootstrap (and everything it imports) in the final binary, since
// arch/riscv64 reaches kernel/bootstrap.Start through go:linkname rather
// than a Go-level import, and a package the import graph never touches is
// never compiled in. Mirrors the teacher's boot.go/stub.go: "a dummy call
// to prevent the compiler from optimizing away the actual kernel code".
package main

import "rvkernel/kernel/bootstrap"

// dtbPA defers to a package variable, not a literal 0 argument, so the
// compiler cannot fold this call away entirely.
var dtbPA uintptr

func main() {
	if dtbPA != 0 {
		bootstrap.Start()
	}
}
