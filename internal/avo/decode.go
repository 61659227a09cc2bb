//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// This file generates the SSSE3 decode kernel.
//
// Stream VByte's bulk decoder looks up a 16-byte PSHUFB mask per control
// byte (see tables.go) and uses it to scatter the 4-16 payload bytes of one
// quad into four 4-byte lanes, zero-filling every lane position the mask
// marks with the 0x80 sentinel. This is the standard Lemire/Kurz streamvbyte
// SIMD decode: one shuffle replaces up to four scalar length-dispatch
// branches.

func genDecodeQuadKernel() {
	TEXT("decodeQuadShuffle", NOSPLIT, "func(data *byte, mask *byte, dst *byte)")
	Doc("decodeQuadShuffle shuffles the 16-byte payload window at data into")
	Doc("four decoded uint32s at dst, using the PSHUFB mask at mask.")
	Doc("data and dst must each have 16 valid bytes; mask always does, since")
	Doc("it points into a row of decodeShuffleTable.")

	dataParam := Load(Param("data"), GP64())
	dataPtr := dataParam.(reg.GPVirtual)
	maskParam := Load(Param("mask"), GP64())
	maskPtr := maskParam.(reg.GPVirtual)
	dstParam := Load(Param("dst"), GP64())
	dstPtr := dstParam.(reg.GPVirtual)

	payload := XMM()
	shuffleMask := XMM()

	MOVOU(op.Mem{Base: dataPtr}, payload)
	MOVOU(op.Mem{Base: maskPtr}, shuffleMask)
	PSHUFB(shuffleMask, payload)
	MOVOU(payload, op.Mem{Base: dstPtr})

	RET()
}
