// Package streamvbyte implements the Stream VByte integer codec.
//
// Stream VByte encodes a sequence of unsigned 32-bit integers into two
// parallel regions: a control stream of 2-bit length tags (one control byte
// per four integers, "a quad") and a data stream of the minimal little-endian
// bytes needed for each integer. Splitting length metadata from payload this
// way lets a decoder load sixteen payload bytes and one control byte, consult
// a 256-entry shuffle-mask table, and produce four decoded integers with a
// single SSSE3 byte shuffle.
//
// Use EncodeUint32 and DecodeUint32 for the common case. Encode, DecodeScalar
// and Decode expose the lower-level, allocation-free primitives they're built
// on. Cursor supports sequential and skip-ahead decoding without materializing
// the whole output slice at once.
//
// The package performs no run-time CPU feature detection; Decode always
// prefers the SIMD path on amd64 builds without the purego build tag, and
// falls back to the scalar decoder everywhere else. Callers that need to
// choose explicitly can use HasSSSE3 and DecodeScalar.
package streamvbyte

import "encoding/binary"

var bo = binary.LittleEndian
