package streamvbyte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeUint32DecodeUint32RoundTrip(t *testing.T) {
	assert := assert.New(t)
	values := genSequential(5000)

	encoded := EncodeUint32(values, nil)
	assert.LessOrEqual(len(encoded), MaxEncodedLen(len(values)))

	decoded := DecodeUint32(encoded, len(values), nil)
	assert.Equal(values, decoded)
}

func TestEncodeUint32ReusesBuffer(t *testing.T) {
	assert := assert.New(t)
	values := []uint32{1, 2, 3, 4, 5}
	buf := make([]byte, MaxEncodedLen(len(values)))

	encoded := EncodeUint32(values, &EncodeOptions{Buffer: buf})
	assert.Same(&buf[0], &encoded[0])
}

func TestDecodeUint32ReusesBuffer(t *testing.T) {
	assert := assert.New(t)
	values := []uint32{1, 2, 3, 4, 5}
	encoded := EncodeUint32(values, nil)

	buf := make([]uint32, len(values))
	decoded := DecodeUint32(encoded, len(values), &DecodeOptions{Buffer: buf})
	assert.Same(&buf[0], &decoded[0])
	assert.Equal(values, decoded)
}

func TestDecodeUint32StrategyScalarMatchesAuto(t *testing.T) {
	assert := assert.New(t)
	values := genSequential(1000)
	encoded := EncodeUint32(values, nil)

	auto := DecodeUint32(encoded, len(values), nil)
	scalar := DecodeUint32(encoded, len(values), &DecodeOptions{Strategy: StrategyScalar})
	assert.Equal(auto, scalar)
}

func TestDecodeUint32PanicsOnTruncatedInput(t *testing.T) {
	assert := assert.New(t)
	assert.Panics(func() {
		DecodeUint32([]byte{0xFF}, 4, nil)
	})
}
