// Package sync provides synchronization primitives usable before the Go
// runtime's scheduler exists. Early boot on this kernel never actually
// contends a Spinlock (every secondary hart is parked in WFI before boot
// reaches code that takes one), and no other package in this module takes
// one; the type is here for later, post-boot code to build on without
// re-deriving it.
package sync

import "sync/atomic"

// yieldFn is called by Acquire between failed attempts once
// attemptsBeforeYielding is exceeded.
// TODO: replace with a real yield once the scheduler exists; for now a spin
// loop is the only option since there is nothing to switch to.
var yieldFn func()

const attemptsBeforeYielding = 1000

// Spinlock implements a lock where each task trying to acquire it
// busy-waits until the lock becomes available.
type Spinlock struct {
	state atomic.Uint32
}

// Acquire blocks until the lock can be acquired by the caller. Acquiring a
// lock already held by the caller deadlocks.
func (l *Spinlock) Acquire() {
	attempts := uint32(0)
	for !l.state.CompareAndSwap(0, 1) {
		attempts++
		if attempts >= attemptsBeforeYielding && yieldFn != nil {
			yieldFn()
			attempts = 0
		}
	}
}

// TryToAcquire attempts to acquire the lock without blocking, returning
// true on success.
func (l *Spinlock) TryToAcquire() bool {
	return l.state.CompareAndSwap(0, 1)
}

// Release relinquishes a held lock. Calling Release on a free lock has no
// effect.
func (l *Spinlock) Release() {
	l.state.Store(0)
}
