package streamvbyte

// Encode writes the Stream VByte encoding of values into dst and returns the
// number of bytes written.
//
// dst must have length at least MaxEncodedLen(len(values)); callers that
// don't know the encoded length ahead of time should size dst that way.
// Encode writes the control stream first, then the data stream immediately
// after, and never allocates.
func Encode(values []uint32, dst []byte) (int, error) {
	n := len(values)
	if len(dst) < MaxEncodedLen(n) {
		return 0, errBufferTooSmall(MaxEncodedLen(n), len(dst))
	}

	controlLen := ControlStreamLen(n)
	control := dst[:controlLen]
	data := dst[controlLen:]

	written := encodeQuadsScalar(values, control, data)
	return controlLen + written, nil
}

// encodeQuadsScalar is the scalar encoder's hot loop: it fills every control
// byte in control (including a partial trailing one) and appends the minimal
// little-endian bytes for every value to data. It is also the mandatory
// source of truth for quad encoding reused by the table-driven decoders'
// tests.
func encodeQuadsScalar(values []uint32, control, data []byte) int {
	n := len(values)
	fullQuads := n / 4
	written := 0

	for q := 0; q < fullQuads; q++ {
		base := q * 4
		v0, v1, v2, v3 := values[base], values[base+1], values[base+2], values[base+3]

		l0 := encodeNumScalar(v0, data[written:])
		l1 := encodeNumScalar(v1, data[written+l0:])
		l2 := encodeNumScalar(v2, data[written+l0+l1:])
		l3 := encodeNumScalar(v3, data[written+l0+l1+l2:])

		control[q] = byte(l0-1) | byte(l1-1)<<2 | byte(l2-1)<<4 | byte(l3-1)<<6
		written += l0 + l1 + l2 + l3
	}

	leftover := n - fullQuads*4
	if leftover > 0 {
		var ctrl byte
		for i := 0; i < leftover; i++ {
			v := values[fullQuads*4+i]
			l := encodeNumScalar(v, data[written:])
			ctrl |= byte(l-1) << (uint(i) * 2)
			written += l
		}
		control[fullQuads] = ctrl
	}

	return written
}

// encodeNumScalar writes the minimal little-endian encoding of v to out and
// returns the number of bytes written (1-4). Zero is encoded as one byte.
func encodeNumScalar(v uint32, out []byte) int {
	l := ByteLength(v)
	switch l {
	case 1:
		out[0] = byte(v)
	case 2:
		bo.PutUint16(out, uint16(v))
	case 3:
		out[0] = byte(v)
		out[1] = byte(v >> 8)
		out[2] = byte(v >> 16)
	case 4:
		bo.PutUint32(out, v)
	}
	return l
}
