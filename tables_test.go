package streamvbyte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDecodeLengthTableMatchesControlByte checks tables.go's shipped
// decodeLengthTable against the same control-byte arithmetic Encode and
// DecodeScalar use directly, so the shuffle-table decoder and the scalar
// decoder can never silently disagree about how many data bytes a quad
// consumes.
func TestDecodeLengthTableMatchesControlByte(t *testing.T) {
	assert := assert.New(t)
	for ctrl := 0; ctrl < 256; ctrl++ {
		want := quadPayloadLen(byte(ctrl))
		assert.Equal(want, int(decodeLengthTable[ctrl]), "ctrl=0x%02X", ctrl)
	}
}

// TestDecodeShuffleTableSelfConsistent checks every row's structural
// invariants: exactly decodeLengthTable[ctrl] non-sentinel entries, each
// naming a distinct source byte in [0, decodeLengthTable[ctrl)), and every
// other entry the 0x80 "write zero" sentinel.
func TestDecodeShuffleTableSelfConsistent(t *testing.T) {
	assert := assert.New(t)
	for ctrl := 0; ctrl < 256; ctrl++ {
		row := decodeShuffleTable[ctrl]
		payloadLen := int(decodeLengthTable[ctrl])

		seen := make(map[byte]bool)
		nonSentinel := 0
		for _, b := range row {
			if b == 0x80 {
				continue
			}
			nonSentinel++
			assert.False(seen[b], "ctrl=0x%02X duplicate source index 0x%02X", ctrl, b)
			seen[b] = true
			assert.Less(int(b), payloadLen, "ctrl=0x%02X source index 0x%02X out of range", ctrl, b)
		}
		assert.Equal(payloadLen, nonSentinel, "ctrl=0x%02X", ctrl)
	}
}

// TestDecodeShuffleTablePreservesLaneOrder checks that within each decoded
// lane, source indices increase in step with output position: PSHUFB must
// read each value's bytes in ascending (little-endian) order.
func TestDecodeShuffleTablePreservesLaneOrder(t *testing.T) {
	assert := assert.New(t)
	for ctrl := 0; ctrl < 256; ctrl++ {
		row := decodeShuffleTable[ctrl]
		l0, l1, l2, l3 := decodeLengths(byte(ctrl))
		lens := [4]int{l0, l1, l2, l3}

		srcOffset := 0
		for lane, l := range lens {
			for i := 0; i < 4; i++ {
				out := row[lane*4+i]
				if i < l {
					assert.Equal(byte(srcOffset+i), out, "ctrl=0x%02X lane=%d byte=%d", ctrl, lane, i)
				} else {
					assert.Equal(byte(0x80), out, "ctrl=0x%02X lane=%d byte=%d", ctrl, lane, i)
				}
			}
			srcOffset += l
		}
	}
}
