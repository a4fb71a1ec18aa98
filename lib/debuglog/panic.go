package debuglog

import (
	"rvkernel/arch/riscv64"
	"rvkernel/kernel"
)

// haltFn is mocked by tests; in production it is riscv64.Halt, which parks
// the hart in wait-for-interrupt forever.
var haltFn = riscv64.Halt

var errUnknownPanic = &kernel.Error{Module: "rt", Message: "unknown cause"}

// Panic prints e, if non-nil, and halts the calling hart. It never
// returns. Every fatal condition in this codebase funnels through Panic
// rather than a bare return, since there is no supervisor to restart a
// hart that falls off the end of its init path.
func Panic(e interface{}) {
	var err *kernel.Error

	switch t := e.(type) {
	case *kernel.Error:
		err = t
	case string:
		errUnknownPanic.Message = t
		err = errUnknownPanic
	case error:
		errUnknownPanic.Message = t.Error()
		err = errUnknownPanic
	default:
		err = errUnknownPanic
	}

	Printf(Always, "\n-----------------------------------\n")
	Printf(Always, "[%s] unrecoverable error: %s\n", err.Module, err.Message)
	Printf(Always, "*** kernel panic: system halted ***\n")
	Printf(Always, "-----------------------------------\n")

	haltFn()
}
