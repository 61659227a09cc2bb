//go:build !amd64 || purego

package streamvbyte

// simdDecodeQuads is left nil on this build: there is no portable
// equivalent of the SSSE3 PSHUFB shuffle used by decode_simd_amd64.go, so
// Decode falls back to DecodeScalar for the entire input. Correctness is
// unaffected; only throughput differs.
