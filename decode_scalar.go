package streamvbyte

// DecodeScalar decodes count integers from src into dst using the scalar
// decoder and returns the number of bytes consumed from src. dst must have
// length at least count.
//
// DecodeScalar never reads past the bytes a control byte's quad actually
// promises, so it is also the decoder used for the SIMD decoder's tail: the
// final (at most three) integers plus any quad whose speculative 16-byte read
// would overrun the input.
//
// DecodeScalar panics if count is negative.
func DecodeScalar(src []byte, count int, dst []uint32) (int, error) {
	if count < 0 {
		panic("streamvbyte: negative count")
	}
	if count == 0 {
		return 0, nil
	}
	if len(dst) < count {
		return 0, errBufferTooSmall(count*4, len(dst)*4)
	}

	controlLen := ControlStreamLen(count)
	if len(src) < controlLen {
		return 0, &TruncatedInputError{Expected: controlLen, Available: len(src)}
	}
	control := src[:controlLen]
	data := src[controlLen:]

	read, err := decodeScalarSplit(control, data, count, dst)
	if err != nil {
		return 0, err
	}
	return controlLen + read, nil
}

// decodeScalarSplit is the core scalar decode loop, operating on the control
// and data streams as separate slices so Decode's scalar tail can resume
// partway through both without concatenating them. It returns the number of
// data-stream bytes consumed.
func decodeScalarSplit(control, data []byte, count int, dst []uint32) (int, error) {
	fullQuads := count / 4
	read := 0

	for q := 0; q < fullQuads; q++ {
		ctrl := control[q]
		l0, l1, l2, l3 := decodeLengths(ctrl)

		if len(data)-read < l0+l1+l2+l3 {
			return 0, &TruncatedInputError{Expected: l0 + l1 + l2 + l3, Available: len(data) - read}
		}

		base := q * 4
		dst[base] = decodeNumScalar(data[read:], l0)
		read += l0
		dst[base+1] = decodeNumScalar(data[read:], l1)
		read += l1
		dst[base+2] = decodeNumScalar(data[read:], l2)
		read += l2
		dst[base+3] = decodeNumScalar(data[read:], l3)
		read += l3
	}

	leftover := count - fullQuads*4
	if leftover > 0 {
		ctrl := control[fullQuads]
		for i := 0; i < leftover; i++ {
			l := int((ctrl>>(uint(i)*2))&0x03) + 1
			if len(data)-read < l {
				return 0, &TruncatedInputError{Expected: l, Available: len(data) - read}
			}
			dst[fullQuads*4+i] = decodeNumScalar(data[read:], l)
			read += l
		}
	}

	return read, nil
}

// decodeNumScalar reads l little-endian bytes from the front of data,
// zero-extended to 32 bits.
func decodeNumScalar(data []byte, l int) uint32 {
	switch l {
	case 1:
		return uint32(data[0])
	case 2:
		return uint32(bo.Uint16(data))
	case 3:
		return uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16
	default:
		return bo.Uint32(data)
	}
}

// DecodeOne decodes a single value at the given 0-based index from a
// Stream VByte stream of count values, without decoding the values around
// it. It is intended for occasional random access; sequential access should
// use Cursor, and bulk access should use DecodeScalar or Decode.
func DecodeOne(encoded []byte, count, index int) uint32 {
	numControlBytes := ControlStreamLen(count)
	control := encoded[:numControlBytes]
	data := encoded[numControlBytes:]

	quad := index >> 2
	posInQuad := index & 0x03

	offset := 0
	for i := 0; i < quad; i++ {
		offset += quadPayloadLen(control[i])
	}

	ctrl := control[quad]
	for i := 0; i <= posInQuad; i++ {
		l := int((ctrl>>(uint(i)*2))&0x03) + 1
		if i == posInQuad {
			return decodeNumScalar(data[offset:], l)
		}
		offset += l
	}
	return 0
}
