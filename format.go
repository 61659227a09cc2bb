package streamvbyte

import (
	"errors"
	"fmt"
)

// ErrBufferTooSmall is returned when a destination buffer is smaller than the
// computed worst case (encode) or smaller than the requested count (decode).
var ErrBufferTooSmall = errors.New("streamvbyte: buffer too small")

// TruncatedInputError reports that the input ended before a decode operation
// had read everything it needed: either the input is shorter than the control
// stream for the requested count, or the data stream ended before all the
// bytes its control stream promised.
type TruncatedInputError struct {
	// Expected is the number of bytes required: the control-stream length
	// when the input is shorter than the control stream, otherwise the
	// data-stream bytes the current control byte requires.
	Expected int
	// Available is the number of bytes actually present: the whole input
	// length in the first case, the remaining data-stream bytes otherwise.
	Available int
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("streamvbyte: truncated input: need %d data bytes, have %d", e.Expected, e.Available)
}

// ByteLength returns the minimal number of little-endian bytes needed to
// represent x, in the range [1,4]. Zero encodes as one byte.
func ByteLength(x uint32) int {
	switch {
	case x < 1<<8:
		return 1
	case x < 1<<16:
		return 2
	case x < 1<<24:
		return 3
	default:
		return 4
	}
}

// ControlStreamLen returns the number of control bytes needed to describe n
// integers: ceil(n/4).
func ControlStreamLen(n int) int {
	return (n + 3) / 4
}

// MaxEncodedLen returns the worst-case encoded length for n integers: every
// integer occupies 4 payload bytes plus one control byte per quad.
func MaxEncodedLen(n int) int {
	return ControlStreamLen(n) + 4*n
}

// decodeLengths unpacks the four 2-bit length codes of a control byte into
// byte lengths in [1,4], without branching.
func decodeLengths(ctrl byte) (l0, l1, l2, l3 int) {
	l0 = int(ctrl&0x03) + 1
	l1 = int((ctrl>>2)&0x03) + 1
	l2 = int((ctrl>>4)&0x03) + 1
	l3 = int((ctrl>>6)&0x03) + 1
	return
}

// quadPayloadLen returns the total data-stream bytes a control byte's quad
// consumes: the sum of its four (length) fields.
func quadPayloadLen(ctrl byte) int {
	l0, l1, l2, l3 := decodeLengths(ctrl)
	return l0 + l1 + l2 + l3
}

// errBufferTooSmall wraps ErrBufferTooSmall with the required and available
// capacity, in the teacher's fmt.Errorf("%w: ...") convention.
func errBufferTooSmall(need, have int) error {
	return fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, need, have)
}
