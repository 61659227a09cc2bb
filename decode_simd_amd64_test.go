//go:build amd64 && !purego

package streamvbyte

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeQuadsSSSE3MatchesScalar(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(99))

	values := make([]uint32, 400)
	for i := range values {
		values[i] = rng.Uint32() >> (uint(i%5) * 8)
	}

	dst := make([]byte, MaxEncodedLen(len(values)))
	n, err := Encode(values, dst)
	assert.NoError(err)
	encoded := dst[:n]

	controlLen := ControlStreamLen(len(values))
	control := encoded[:controlLen]
	data := encoded[controlLen:]

	simdOut := make([]uint32, len(values))
	quadsDecoded, bytesRead := decodeQuadsSSSE3(control, data, len(values)/4, simdOut)
	// The loop stops before the first quad whose 16-byte read window would
	// run past the end of data; everything before it is decoded.
	wantQuads := 0
	for off := 0; wantQuads < len(control) && off+16 <= len(data); wantQuads++ {
		off += quadPayloadLen(control[wantQuads])
	}
	assert.Equal(wantQuads, quadsDecoded)

	scalarOut := make([]uint32, len(values))
	_, err = decodeScalarSplit(control, data, quadsDecoded*4, scalarOut)
	assert.NoError(err)

	assert.Equal(scalarOut[:quadsDecoded*4], simdOut[:quadsDecoded*4])

	var wantBytesRead int
	for _, ctrl := range control[:quadsDecoded] {
		wantBytesRead += quadPayloadLen(ctrl)
	}
	assert.Equal(wantBytesRead, bytesRead)
}

func TestDecodeQuadsSSSE3StopsShortOfDataOverrun(t *testing.T) {
	assert := assert.New(t)

	// The first quad's 4-byte values fill the whole 16-byte speculative
	// read window; the second quad's 1-byte values leave only four bytes of
	// data stream for the 16-byte window the loop would need to read it.
	values := []uint32{4294967295, 4294967294, 4294967293, 4294967292, 1, 2, 3, 4}
	dst := make([]byte, MaxEncodedLen(len(values)))
	n, err := Encode(values, dst)
	assert.NoError(err)
	encoded := dst[:n]

	controlLen := ControlStreamLen(len(values))
	control := encoded[:controlLen]
	data := encoded[controlLen:]
	assert.Equal(20, len(data))

	out := make([]uint32, len(values))
	quadsDecoded, bytesRead := decodeQuadsSSSE3(control, data, len(values)/4, out)
	assert.Equal(1, quadsDecoded)
	assert.Equal(16, bytesRead)
}
