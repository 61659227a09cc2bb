package streamvbyte

// simdDecodeQuads decodes full quads from control/data into dst using the
// SSSE3-class shuffle-table decoder, stopping before any iteration whose
// speculative 16-byte payload read would run past len(data). It returns how
// many quads it decoded and how many data-stream bytes it consumed.
//
// It is nil on builds without a SIMD decoder (non-amd64, or the purego build
// tag), in which case Decode behaves exactly like DecodeScalar.
var simdDecodeQuads func(control, data []byte, maxQuads int, dst []uint32) (quadsDecoded, bytesRead int)

// Decode decodes count integers from src into dst, preferring the SIMD bulk
// decoder where one is compiled in and falling back to the scalar decoder
// for the tail — the final partial quad, and any full quad whose 16-byte
// speculative read would overrun the input. It returns the number of bytes
// consumed from src.
//
// This implements the SIMD_BULK -> SCALAR_TAIL -> DONE state machine: bulk
// decoding runs while at least 4 integers remain and the next 16-byte read
// is in bounds, then the scalar decoder finishes everything else, including
// the partial trailing quad.
func Decode(src []byte, count int, dst []uint32) (int, error) {
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

	if simdDecodeQuads == nil || count < 4 {
		return DecodeScalar(src, count, dst)
	}

	completeQuads := count / 4
	quadsDecoded, bytesRead := simdDecodeQuads(control[:completeQuads], data, completeQuads, dst)

	valuesDecoded := quadsDecoded * 4
	if valuesDecoded == count {
		return controlLen + bytesRead, nil
	}

	tailConsumed, err := decodeScalarSplit(
		control[quadsDecoded:],
		data[bytesRead:],
		count-valuesDecoded,
		dst[valuesDecoded:],
	)
	if err != nil {
		return 0, err
	}

	return controlLen + bytesRead + tailConsumed, nil
}
