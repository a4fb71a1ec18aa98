package riscv64

// The functions below have no Go body; their implementations live in
// csr_riscv64.s. This mirrors the teacher's kernel/cpu/cpu_amd64.go
// convention of declaring privileged, architecture-specific primitives in
// Go and backing them with hand-written assembly.

// maskInterrupts clears sie and sip and disables the FPU by clearing the FS
// field of sstatus. rawEntry does not call it: it runs the same sequence
// inline, before it has a stack.
func maskInterrupts()

// hartLottery atomically increments the shared hart counter and returns the
// pre-increment value. Only the hart that observes 0 should continue; every
// other hart must park.
func hartLottery() uint32

// wfi parks the calling hart in wait-for-interrupt forever. It never
// returns; used by Halt. Harts that lose the boot lottery park in
// rawEntry's own inline loop instead.
func wfi()

// sfenceVMA issues a full TLB-publishing fence (sfence.vma with no
// operands), ordering page-table writes ahead of subsequent address
// translation.
func sfenceVMA()

// writeSATP installs a new SATP image and returns only after the write has
// retired.
func writeSATP(satp uint64)

// Halt stops the calling hart permanently. Used by the debug-print façade
// when recovering from an unrecoverable boot error is not possible.
func Halt() {
	wfi()
}
