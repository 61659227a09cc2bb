package streamvbyte

import "golang.org/x/sys/cpu"

// HasSSSE3 reports whether the running CPU advertises SSSE3, the instruction
// set decodeQuadShuffle depends on. Decode and DecodeScalar never call this
// themselves: on amd64 builds without the purego build tag Decode always
// compiles in the SIMD path, so HasSSSE3 exists only for callers that want to
// make their own strategy decision, e.g. to choose between Decode and
// DecodeScalar explicitly or to log which path a deployment is taking.
func HasSSSE3() bool {
	return cpu.X86.HasSSSE3
}
