// Package kernel contains types and helpers shared by every layer of the
// early boot core: the allocation-free error type and the raw memory
// primitives used before the Go heap is available.
package kernel

// Error describes a kernel error. All kernel errors are defined as package
// level variables that are pointers to this structure. This requirement
// stems from the fact that the Go allocator is not available during early
// boot so errors.New cannot be used.
type Error struct {
	// Module is the subsystem where the error originated.
	Module string

	// Message is the human readable error description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
