package streamvbyte

// EncodeOptions configures EncodeUint32.
type EncodeOptions struct {
	// Buffer is reused as the destination when it has enough capacity for
	// the worst case, avoiding an allocation. A new slice is allocated
	// otherwise.
	Buffer []byte
}

// DecodeOptions configures DecodeUint32.
type DecodeOptions struct {
	// Buffer is reused as the destination when it has enough capacity for
	// count values, avoiding an allocation. A new slice is allocated
	// otherwise.
	Buffer []uint32
	// Strategy selects the decode core. Zero value is StrategyAuto.
	Strategy Strategy
}

// Strategy selects which decode core DecodeUint32 uses. The zero value is
// StrategyAuto. Strategy selection is always a caller decision: the package
// never probes CPU capability itself (see HasSSSE3).
type Strategy int

const (
	// StrategyAuto prefers the SIMD decoder where one is compiled in,
	// falling back to the scalar decoder for the tail. This is what Decode
	// does.
	StrategyAuto Strategy = iota
	// StrategyScalar always uses the scalar decoder.
	StrategyScalar
)

// EncodeUint32 encodes values and returns the encoded bytes, reusing
// opts.Buffer when it has enough capacity. opts may be nil.
//
// EncodeUint32 panics if Encode reports an error, which cannot happen here
// since the destination is always sized to MaxEncodedLen(len(values)).
func EncodeUint32(values []uint32, opts *EncodeOptions) []byte {
	need := MaxEncodedLen(len(values))
	dst := encodeBuffer(opts, need)

	n, err := Encode(values, dst)
	if err != nil {
		panic(err)
	}
	return dst[:n]
}

// DecodeUint32 decodes count values from encoded and returns them, reusing
// opts.Buffer when it has enough capacity. opts may be nil, in which case
// StrategyAuto is used.
//
// DecodeUint32 panics if the underlying decode reports an error (malformed
// or truncated encoded); callers that need to handle malformed input as a
// recoverable error should call Decode or DecodeScalar directly.
func DecodeUint32(encoded []byte, count int, opts *DecodeOptions) []uint32 {
	dst := decodeBuffer(opts, count)

	var err error
	if opts != nil && opts.Strategy == StrategyScalar {
		_, err = DecodeScalar(encoded, count, dst)
	} else {
		_, err = Decode(encoded, count, dst)
	}
	if err != nil {
		panic(err)
	}
	return dst
}

func encodeBuffer(opts *EncodeOptions, need int) []byte {
	if opts != nil && cap(opts.Buffer) >= need {
		return opts.Buffer[:need]
	}
	return make([]byte, need)
}

func decodeBuffer(opts *DecodeOptions, count int) []uint32 {
	if opts != nil && cap(opts.Buffer) >= count {
		return opts.Buffer[:count]
	}
	return make([]uint32, count)
}
