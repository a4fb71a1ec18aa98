package debuglog

import "io"

// traceBufferSize bounds the trail of recent boot output kept in memory.
// Must be a power of two.
const traceBufferSize = 1024

// traceBuffer is a fixed-size ring buffer holding the most recent bytes
// written through Printf. Only messages that pass the Threshold check
// reach it. Nothing in this package reads it back; Panic does not replay
// it.
type traceBuffer struct {
	buffer         [traceBufferSize]byte
	rIndex, wIndex int
}

func (rb *traceBuffer) Write(p []byte) (int, error) {
	for _, b := range p {
		rb.buffer[rb.wIndex] = b
		rb.wIndex = (rb.wIndex + 1) & (traceBufferSize - 1)
		if rb.rIndex == rb.wIndex {
			rb.rIndex = (rb.rIndex + 1) & (traceBufferSize - 1)
		}
	}
	return len(p), nil
}

func (rb *traceBuffer) Read(p []byte) (int, error) {
	switch {
	case rb.rIndex < rb.wIndex:
		n := rb.wIndex - rb.rIndex
		if len(p) < n {
			n = len(p)
		}
		copy(p, rb.buffer[rb.rIndex:rb.rIndex+n])
		rb.rIndex += n
		return n, nil
	case rb.rIndex > rb.wIndex:
		n := len(rb.buffer) - rb.rIndex
		if len(p) < n {
			n = len(p)
		}
		copy(p, rb.buffer[rb.rIndex:rb.rIndex+n])
		rb.rIndex += n
		if rb.rIndex == len(rb.buffer) {
			rb.rIndex = 0
		}
		return n, nil
	default:
		return 0, io.EOF
	}
}

var trace traceBuffer
