package pmm

import (
	"reflect"
	"unsafe"
)

// pageArrayAt reinterprets the memory at va as a slice of count Page
// descriptors, the same reflect.SliceHeader construction kernel.Memset
// uses to treat a raw address as a Go slice before any allocator exists
// to have produced one normally.
func pageArrayAt(va uintptr, count uintptr) []Page {
	return *(*[]Page)(unsafe.Pointer(&reflect.SliceHeader{
		Data: va,
		Len:  int(count),
		Cap:  int(count),
	}))
}
