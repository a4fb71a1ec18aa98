package sync

import "testing"

func TestSpinlockTryToAcquire(t *testing.T) {
	var l Spinlock
	if !l.TryToAcquire() {
		t.Fatalf("TryToAcquire on a free lock should succeed")
	}
	if l.TryToAcquire() {
		t.Fatalf("TryToAcquire on a held lock should fail")
	}
	l.Release()
	if !l.TryToAcquire() {
		t.Fatalf("TryToAcquire after Release should succeed")
	}
}

func TestSpinlockAcquireRelease(t *testing.T) {
	var l Spinlock
	l.Acquire()
	done := make(chan struct{})
	go func() {
		l.Acquire()
		close(done)
	}()

	select {
	case <-done:
		t.Fatalf("second Acquire succeeded while lock was held")
	default:
	}

	l.Release()
	<-done
}
