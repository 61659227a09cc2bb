package streamvbyte

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEmpty(t *testing.T) {
	assert := assert.New(t)
	n, err := Decode(nil, 0, nil)
	assert.NoError(err)
	assert.Equal(0, n)
}

func TestDecodeMatchesScalarAcrossSizes(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 63, 64, 65, 999, 5000} {
		values := make([]uint32, n)
		for i := range values {
			values[i] = rng.Uint32() >> (uint(i%5) * 8)
		}

		dst := make([]byte, MaxEncodedLen(n))
		encLen, err := Encode(values, dst)
		assert.NoError(err)
		encoded := dst[:encLen]

		wantDst := make([]uint32, n)
		wantConsumed, err := DecodeScalar(encoded, n, wantDst)
		assert.NoError(err)

		gotDst := make([]uint32, n)
		gotConsumed, err := Decode(encoded, n, gotDst)
		assert.NoError(err)

		assert.Equal(wantConsumed, gotConsumed, "n=%d", n)
		assert.Equal(wantDst, gotDst, "n=%d", n)
	}
}

func TestDecodeTruncatedInput(t *testing.T) {
	assert := assert.New(t)
	_, err := Decode([]byte{0xFF}, 4, make([]uint32, 4))
	var truncErr *TruncatedInputError
	assert.ErrorAs(err, &truncErr)
}

func TestDecodeBufferTooSmall(t *testing.T) {
	assert := assert.New(t)
	_, err := Decode([]byte{0x00, 1, 2, 3, 4}, 4, make([]uint32, 2))
	assert.ErrorIs(err, ErrBufferTooSmall)
}
