// Package riscv64 orchestrates early_init: parsing the device tree,
// recording memory and peripheral ranges, building PMM arenas over
// discovered RAM, and wiring the boot-reserve list into the page
// database. It is the platform layer C5 describes, for this architecture.
package riscv64

import (
	"reflect"
	"unsafe"

	"rvkernel/device/fdt"
	"rvkernel/lib/debuglog"
	"rvkernel/vm"
)

// MaxMemRanges bounds the number of RAM ranges a single DTB scan records,
// a fixed-capacity array in the same spirit as the boot-reserve and
// peripheral lists: no heap exists yet to back a growable one.
const MaxMemRanges = 16

// scanDTB validates and parses the blob at ctx.DTBPA (translated through
// the physmap, since it executes after paging is live) and emits one
// ZBIMemRange per nonzero-size memory range (ranges past MaxMemRanges are
// dropped) plus the kernel command line.
func scanDTB(ctx *vm.BootContext) (cmdline string, ranges [MaxMemRanges]vm.ZBIMemRange, count int, err error) {
	if ctx.DTBPA == 0 {
		return "", ranges, 0, fdt.ErrNoDTB
	}

	va := vm.PaddrToPhysmap(ctx.DTBPA)

	headerView := bytesAt(va, 8)
	totalSize := beUint32(headerView[4:8])
	if totalSize == 0 {
		return "", ranges, 0, fdt.ErrBadDTB
	}

	blob, err := fdt.Open(bytesAt(va, uintptr(totalSize)))
	if err != nil {
		return "", ranges, 0, err
	}

	addrCells, sizeCells, err := blob.AddressSizeCells()
	if err != nil {
		return "", ranges, 0, err
	}

	if args, ok := blob.Bootargs(); ok {
		cmdline = args
	}

	err = blob.WalkMemory(addrCells, sizeCells, func(r fdt.MemRange) {
		if count >= MaxMemRanges {
			return
		}
		ranges[count] = vm.ZBIMemRange{
			Type:   vm.RAM,
			Paddr:  uintptr(r.Base),
			Length: uintptr(r.Size),
		}
		count++
	})
	if err != nil {
		return "", ranges, 0, err
	}

	debuglog.Printf(debuglog.Info, "devicetree: cmdline %s, %d memory ranges\n", cmdline, count)
	return cmdline, ranges, count, nil
}

func bytesAt(addr uintptr, length uintptr) []byte {
	return *(*[]byte)(unsafe.Pointer(&reflect.SliceHeader{
		Data: addr,
		Len:  int(length),
		Cap:  int(length),
	}))
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
