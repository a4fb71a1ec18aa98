package fdt

import "encoding/binary"

// The scanner below walks the structure block a single time per query and
// never builds an in-memory tree: there is no heap bootstrapped at the
// point this code runs, so every result is either returned by value or
// delivered through a callback the caller services immediately.

// scanner holds position inside the structure block during a single walk.
type scanner struct {
	b   *Blob
	off int
}

func (b *Blob) newScanner() *scanner {
	return &scanner{b: b, off: b.structOffset()}
}

// event describes what the scanner found at the cursor before advancing.
type event int

const (
	eventBeginNode event = iota
	eventEndNode
	eventProp
	eventEnd
)

// next advances the scanner past one token, skipping FDT_NOP, and reports
// what it found. For eventBeginNode, name holds the node name. For
// eventProp, name holds the resolved property name and value its raw
// bytes.
func (s *scanner) next() (ev event, name string, value []byte, err error) {
	for {
		if s.off+4 > len(s.b.raw) {
			return eventEnd, "", nil, ErrBadDTB
		}
		tok := s.b.u32(s.off)

		switch tok {
		case tokenNop:
			s.off += 4
			continue
		case tokenBeginNode:
			nameStart := s.off + 4
			nameEnd := nameStart
			for nameEnd < len(s.b.raw) && s.b.raw[nameEnd] != 0 {
				nameEnd++
			}
			name = string(s.b.raw[nameStart:nameEnd])
			s.off = align4(nameEnd + 1)
			return eventBeginNode, name, nil, nil
		case tokenEndNode:
			s.off += 4
			return eventEndNode, "", nil, nil
		case tokenProp:
			length := int(s.b.u32(s.off + 4))
			nameOff := s.b.u32(s.off + 8)
			valStart := s.off + 12
			if valStart+length > len(s.b.raw) {
				return eventEnd, "", nil, ErrBadDTB
			}
			value = s.b.raw[valStart : valStart+length]
			s.off = align4(valStart + length)
			return eventProp, s.b.stringAt(nameOff), value, nil
		case tokenEnd:
			return eventEnd, "", nil, nil
		default:
			return eventEnd, "", nil, ErrBadDTB
		}
	}
}

// skipSubtree advances past the remainder of the node whose
// FDT_BEGIN_NODE has already been consumed, i.e. until its matching
// FDT_END_NODE.
func (s *scanner) skipSubtree() error {
	depth := 1
	for depth > 0 {
		ev, _, _, err := s.next()
		if err != nil {
			return err
		}
		switch ev {
		case eventBeginNode:
			depth++
		case eventEndNode:
			depth--
		case eventEnd:
			return ErrBadDTB
		}
	}
	return nil
}

// AddressSizeCells returns the root node's #address-cells and
// #size-cells, defaulting both to 1 when absent, per spec.
func (b *Blob) AddressSizeCells() (addrCells, sizeCells uint32, err error) {
	addrCells, sizeCells = 1, 1

	s := b.newScanner()
	ev, _, _, err := s.next()
	if err != nil {
		return 0, 0, err
	}
	if ev != eventBeginNode {
		return 0, 0, ErrBadDTB
	}

	for {
		ev, name, value, err := s.next()
		if err != nil {
			return 0, 0, err
		}
		switch ev {
		case eventProp:
			switch name {
			case "#address-cells":
				addrCells = binary.BigEndian.Uint32(value)
			case "#size-cells":
				sizeCells = binary.BigEndian.Uint32(value)
			}
		case eventBeginNode:
			if err := s.skipSubtree(); err != nil {
				return 0, 0, err
			}
		case eventEndNode, eventEnd:
			return addrCells, sizeCells, nil
		}
	}
}

// Bootargs returns the "bootargs" property of /chosen (or /chosen@0), if
// present.
func (b *Blob) Bootargs() (string, bool) {
	s := b.newScanner()
	ev, _, _, err := s.next()
	if err != nil || ev != eventBeginNode {
		return "", false
	}

	for {
		ev, name, _, err := s.next()
		if err != nil {
			return "", false
		}
		switch ev {
		case eventBeginNode:
			if name == "chosen" || name == "chosen@0" {
				return scanBootargs(s)
			}
			if err := s.skipSubtree(); err != nil {
				return "", false
			}
		case eventEndNode, eventEnd:
			return "", false
		}
	}
}

func scanBootargs(s *scanner) (string, bool) {
	for {
		ev, name, value, err := s.next()
		if err != nil {
			return "", false
		}
		switch ev {
		case eventProp:
			if name == "bootargs" {
				return cString(value), true
			}
		case eventBeginNode:
			if err := s.skipSubtree(); err != nil {
				return "", false
			}
		case eventEndNode, eventEnd:
			return "", false
		}
	}
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// MemRange is a single (base, size) tuple decoded from a memory node's
// "reg" property.
type MemRange struct {
	Base uint64
	Size uint64
}

// WalkMemory invokes cb once for every nonzero-size (base, size) tuple
// found in the "reg" property of every direct child of the root node whose
// device_type is "memory", decoded using the given cell widths.
func (b *Blob) WalkMemory(addrCells, sizeCells uint32, cb func(MemRange)) error {
	s := b.newScanner()
	ev, _, _, err := s.next()
	if err != nil {
		return err
	}
	if ev != eventBeginNode {
		return ErrBadDTB
	}

	for {
		ev, _, _, err := s.next()
		if err != nil {
			return err
		}
		switch ev {
		case eventBeginNode:
			isMemory, reg, err := scanMemoryNode(s)
			if err != nil {
				return err
			}
			if isMemory {
				emitMemoryRanges(reg, addrCells, sizeCells, cb)
			}
		case eventEndNode, eventEnd:
			return nil
		}
	}
}

// scanMemoryNode consumes one already-opened node and reports whether its
// device_type is "memory", along with its raw "reg" bytes if present.
func scanMemoryNode(s *scanner) (bool, []byte, error) {
	isMemory := false
	var reg []byte

	for {
		ev, name, value, err := s.next()
		if err != nil {
			return false, nil, err
		}
		switch ev {
		case eventProp:
			switch name {
			case "device_type":
				isMemory = cString(value) == "memory"
			case "reg":
				reg = value
			}
		case eventBeginNode:
			if err := s.skipSubtree(); err != nil {
				return false, nil, err
			}
		case eventEndNode, eventEnd:
			return isMemory, reg, nil
		}
	}
}

func emitMemoryRanges(reg []byte, addrCells, sizeCells uint32, cb func(MemRange)) {
	stride := int(addrCells+sizeCells) * 4
	if stride == 0 {
		return
	}
	for off := 0; off+stride <= len(reg); off += stride {
		base := readCells(reg[off:], int(addrCells))
		size := readCells(reg[off+int(addrCells)*4:], int(sizeCells))
		if size != 0 {
			cb(MemRange{Base: base, Size: size})
		}
	}
}

func readCells(buf []byte, count int) uint64 {
	var v uint64
	for i := 0; i < count; i++ {
		v = v<<32 | uint64(binary.BigEndian.Uint32(buf[i*4:i*4+4]))
	}
	return v
}
