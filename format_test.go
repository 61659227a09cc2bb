package streamvbyte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteLength(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, ByteLength(0))
	assert.Equal(1, ByteLength(255))
	assert.Equal(2, ByteLength(256))
	assert.Equal(2, ByteLength(1<<16-1))
	assert.Equal(3, ByteLength(1<<16))
	assert.Equal(3, ByteLength(1<<24-1))
	assert.Equal(4, ByteLength(1<<24))
	assert.Equal(4, ByteLength(^uint32(0)))
}

func TestControlStreamLen(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, ControlStreamLen(0))
	assert.Equal(1, ControlStreamLen(1))
	assert.Equal(1, ControlStreamLen(4))
	assert.Equal(2, ControlStreamLen(5))
	assert.Equal(1250, ControlStreamLen(5000))
}

func TestMaxEncodedLen(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, MaxEncodedLen(0))
	assert.Equal(1+4, MaxEncodedLen(1))
	assert.Equal(1+16, MaxEncodedLen(4))
	assert.Equal(2+20, MaxEncodedLen(5))
}

func TestDecodeLengths(t *testing.T) {
	assert := assert.New(t)

	l0, l1, l2, l3 := decodeLengths(0x00)
	assert.Equal([4]int{1, 1, 1, 1}, [4]int{l0, l1, l2, l3})

	l0, l1, l2, l3 = decodeLengths(0xFF)
	assert.Equal([4]int{4, 4, 4, 4}, [4]int{l0, l1, l2, l3})

	// 0b11_10_01_00: lengths 1,2,3,4 from lane 0 to lane 3.
	l0, l1, l2, l3 = decodeLengths(0xE4)
	assert.Equal([4]int{1, 2, 3, 4}, [4]int{l0, l1, l2, l3})
}

func TestQuadPayloadLen(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(4, quadPayloadLen(0x00))
	assert.Equal(16, quadPayloadLen(0xFF))
	assert.Equal(10, quadPayloadLen(0xE4))
}

func TestErrBufferTooSmallWrapsSentinel(t *testing.T) {
	assert := assert.New(t)
	err := errBufferTooSmall(10, 4)
	assert.ErrorIs(err, ErrBufferTooSmall)
	assert.Contains(err.Error(), "need 10 bytes, have 4")
}

func TestTruncatedInputErrorMessage(t *testing.T) {
	assert := assert.New(t)
	err := &TruncatedInputError{Expected: 3, Available: 1}
	assert.Contains(err.Error(), "need 3 data bytes, have 1")
}
