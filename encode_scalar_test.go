package streamvbyte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeEmpty(t *testing.T) {
	assert := assert.New(t)
	n, err := Encode(nil, nil)
	assert.NoError(err)
	assert.Equal(0, n)
}

func TestEncodeBufferTooSmall(t *testing.T) {
	assert := assert.New(t)
	_, err := Encode([]uint32{1, 2, 3, 4}, make([]byte, 3))
	assert.ErrorIs(err, ErrBufferTooSmall)
}

func TestEncodeFiveValuesMatchesFixture(t *testing.T) {
	// Five values with mixed byte lengths, encoded as two control bytes (a
	// full quad plus a one-value tail).
	assert := assert.New(t)
	values := []uint32{1, 300, 65536, 0, 4294967295}

	dst := make([]byte, MaxEncodedLen(len(values)))
	n, err := Encode(values, dst)
	assert.NoError(err)

	controlLen := ControlStreamLen(len(values))
	assert.Equal(2, controlLen)

	// Lengths: 1(1), 300(2), 65536(3), 0(1) -> control byte 0.
	assert.Equal(byte(0)|byte(1)<<2|byte(2)<<4|byte(0)<<6, dst[0])
	// Lengths: 4294967295(4) -> control byte 1, lane 0.
	assert.Equal(byte(3), dst[1])

	wantDataLen := 1 + 2 + 3 + 1 + 4
	assert.Equal(controlLen+wantDataLen, n)
}

func TestEncodeQuadPayloadMatchesControlByte(t *testing.T) {
	assert := assert.New(t)
	values := []uint32{0, 255, 65535, 4294967295}
	dst := make([]byte, MaxEncodedLen(len(values)))
	n, err := Encode(values, dst)
	assert.NoError(err)
	assert.Equal(1+1+1+2+4, n)
	assert.Equal(quadPayloadLen(dst[0]), n-1)
}
