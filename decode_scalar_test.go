package streamvbyte

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeScalarEmpty(t *testing.T) {
	assert := assert.New(t)
	n, err := DecodeScalar(nil, 0, nil)
	assert.NoError(err)
	assert.Equal(0, n)
}

func TestDecodeScalarBufferTooSmall(t *testing.T) {
	assert := assert.New(t)
	_, err := DecodeScalar([]byte{0x00, 1, 2, 3, 4}, 4, make([]uint32, 3))
	assert.ErrorIs(err, ErrBufferTooSmall)
}

func TestDecodeScalarTruncatedControl(t *testing.T) {
	assert := assert.New(t)
	_, err := DecodeScalar(nil, 4, make([]uint32, 4))
	var truncErr *TruncatedInputError
	assert.ErrorAs(err, &truncErr)
}

func TestDecodeScalarTruncatedData(t *testing.T) {
	assert := assert.New(t)
	// Control byte promises four 4-byte values but data only has one byte.
	_, err := DecodeScalar([]byte{0xFF, 0x01}, 4, make([]uint32, 4))
	var truncErr *TruncatedInputError
	assert.ErrorAs(err, &truncErr)
}

func TestEncodeDecodeScalarRoundTrip(t *testing.T) {
	cases := [][]uint32{
		nil,
		{123456},
		{0, 1, 1, 2, 3, 5, 8, 13, 21},
		{0, 255, 65535, 4294967295},
		genSequential(4999),
		genSequential(5000),
	}

	for _, values := range cases {
		assertRoundTripScalar(t, values)
	}
}

func TestEncodeDecodeScalarRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values := make([]uint32, 1000)
	for i := range values {
		switch i % 4 {
		case 0:
			values[i] = uint32(rng.Intn(1 << 8))
		case 1:
			values[i] = uint32(rng.Intn(1 << 16))
		case 2:
			values[i] = uint32(rng.Intn(1 << 24))
		default:
			values[i] = rng.Uint32()
		}
	}
	assertRoundTripScalar(t, values)
}

func TestEncodeDecodeScalarAllMax(t *testing.T) {
	values := make([]uint32, 37)
	for i := range values {
		values[i] = math.MaxUint32
	}
	assertRoundTripScalar(t, values)
}

func TestDecodeOne(t *testing.T) {
	assert := assert.New(t)
	values := genSequential(5000)
	dst := make([]byte, MaxEncodedLen(len(values)))
	n, err := Encode(values, dst)
	assert.NoError(err)
	encoded := dst[:n]

	for _, idx := range []int{0, 1, 3, 4, 5, 4999} {
		assert.Equal(values[idx], DecodeOne(encoded, len(values), idx))
	}
}

func assertRoundTripScalar(t *testing.T, values []uint32) {
	t.Helper()
	assert := assert.New(t)

	dst := make([]byte, MaxEncodedLen(len(values)))
	n, err := Encode(values, dst)
	assert.NoError(err)
	assert.LessOrEqual(n, MaxEncodedLen(len(values)))

	decoded := make([]uint32, len(values))
	consumed, err := DecodeScalar(dst[:n], len(values), decoded)
	assert.NoError(err)
	assert.Equal(n, consumed)
	if len(values) == 0 {
		assert.Empty(decoded)
	} else {
		assert.Equal(values, decoded)
	}
}

func genSequential(n int) []uint32 {
	values := make([]uint32, n)
	for i := range values {
		values[i] = uint32(i * 100)
	}
	return values
}
