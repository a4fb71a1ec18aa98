// Package fdt reads a flattened device tree blob: the header, a node's
// #address-cells/#size-cells, the bootargs string and memory node ranges.
// Only the subset of the format early boot needs is implemented; there is
// no general tree-walking API.
package fdt

import (
	"encoding/binary"

	"rvkernel/kernel"
)

// Magic is the big-endian FDT_MAGIC value every valid blob starts with.
const Magic = 0xD00DFEED

const (
	headerSize = 40

	tokenBeginNode = 0x1
	tokenEndNode   = 0x2
	tokenProp      = 0x3
	tokenNop       = 0x4
	tokenEnd       = 0x9
)

// ErrNoDTB is returned when the caller passes a null pointer in place of a
// DTB physical address.
var ErrNoDTB = &kernel.Error{Module: "fdt", Message: "no device tree blob present"}

// ErrBadDTB is returned when the blob at the given address fails the
// magic-number check or is otherwise structurally invalid.
var ErrBadDTB = &kernel.Error{Module: "fdt", Message: "device tree blob failed validation"}

// Blob is a parsed view over a flattened device tree image held in the
// byte slice b. Field offsets follow the header layout:
//
//	0  magic
//	4  totalsize
//	8  off_dt_struct
//	12 off_dt_strings
//	16 off_mem_rsvmap
//	20 version
//	24 last_comp_version
//	28 boot_cpuid_phys
//	32 size_dt_strings
//	36 size_dt_struct
type Blob struct {
	raw []byte
}

// Open validates the header at the start of raw and returns a Blob able
// to iterate its structure block. raw must be at least as long as the
// blob's declared totalsize.
func Open(raw []byte) (*Blob, error) {
	if raw == nil {
		return nil, ErrNoDTB
	}
	if len(raw) < headerSize {
		return nil, ErrBadDTB
	}
	if binary.BigEndian.Uint32(raw[0:4]) != Magic {
		return nil, ErrBadDTB
	}

	total := binary.BigEndian.Uint32(raw[4:8])
	if int(total) > len(raw) {
		return nil, ErrBadDTB
	}

	return &Blob{raw: raw[:total]}, nil
}

func (b *Blob) u32(off int) uint32 {
	return binary.BigEndian.Uint32(b.raw[off : off+4])
}

func (b *Blob) structOffset() int  { return int(b.u32(8)) }
func (b *Blob) stringsOffset() int { return int(b.u32(12)) }

// stringAt looks up a null-terminated string in the strings block at
// relOff (an offset relative to the strings block, as stored in every
// FDT_PROP header).
func (b *Blob) stringAt(relOff uint32) string {
	start := b.stringsOffset() + int(relOff)
	end := start
	for end < len(b.raw) && b.raw[end] != 0 {
		end++
	}
	return string(b.raw[start:end])
}

func align4(off int) int {
	return (off + 3) &^ 3
}
