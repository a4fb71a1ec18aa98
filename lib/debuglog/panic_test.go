package debuglog

import (
	"bytes"
	"testing"

	"rvkernel/kernel"
)

func TestPanicWithKernelError(t *testing.T) {
	origConsole := consoleWriteFn
	origHalt := haltFn
	defer func() {
		consoleWriteFn = origConsole
		haltFn = origHalt
	}()

	var buf bytes.Buffer
	consoleWriteFn = func(p []byte) (int, error) { return buf.Write(p) }
	halted := false
	haltFn = func() { halted = true }

	Panic(&kernel.Error{Module: "pmm", Message: "out of memory"})

	if !halted {
		t.Fatalf("Panic did not call haltFn")
	}
	if !bytes.Contains(buf.Bytes(), []byte("pmm")) || !bytes.Contains(buf.Bytes(), []byte("out of memory")) {
		t.Fatalf("panic output missing module/message: %q", buf.String())
	}
}

func TestPanicWithString(t *testing.T) {
	origConsole := consoleWriteFn
	origHalt := haltFn
	defer func() {
		consoleWriteFn = origConsole
		haltFn = origHalt
	}()

	var buf bytes.Buffer
	consoleWriteFn = func(p []byte) (int, error) { return buf.Write(p) }
	haltFn = func() {}

	Panic("assertion failed")

	if !bytes.Contains(buf.Bytes(), []byte("assertion failed")) {
		t.Fatalf("panic output missing message: %q", buf.String())
	}
}
