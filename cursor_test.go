package streamvbyte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorSequential(t *testing.T) {
	assert := assert.New(t)
	values := genSequential(37)
	encoded := mustEncode(t, values)

	c := NewCursor(encoded, len(values))
	for i, want := range values {
		assert.True(c.HasMore())
		assert.Equal(i, c.Pos())
		got, ok := c.Next()
		assert.True(ok)
		assert.Equal(want, got)
	}
	assert.False(c.HasMore())
	_, ok := c.Next()
	assert.False(ok)
	assert.Equal(len(encoded), c.InputConsumed())
}

func TestCursorDecodeSlice(t *testing.T) {
	assert := assert.New(t)
	values := genSequential(100)
	encoded := mustEncode(t, values)

	c := NewCursor(encoded, len(values))
	dst := make([]uint32, 100)
	written := c.DecodeSlice(dst)
	assert.Equal(100, written)
	assert.Equal(values, dst)
}

func TestCursorSkip(t *testing.T) {
	assert := assert.New(t)
	values := genSequential(40)
	encoded := mustEncode(t, values)

	c := NewCursor(encoded, len(values))
	c.Skip(16)
	assert.Equal(16, c.Pos())

	got, ok := c.Next()
	assert.True(ok)
	assert.Equal(values[16], got)

	// Next() left the cursor mid-quad; consume the rest of it before the
	// next Skip, which requires a quad boundary.
	for i := 17; i < 20; i++ {
		got, ok = c.Next()
		assert.True(ok)
		assert.Equal(values[i], got)
	}

	c.Skip(16)
	assert.Equal(36, c.Pos())

	rest := make([]uint32, 4)
	written := c.DecodeSlice(rest)
	assert.Equal(4, written)
	assert.Equal(values[36:], rest)
}

func TestCursorSkipRejectsNonMultipleOfFour(t *testing.T) {
	assert := assert.New(t)
	encoded := mustEncode(t, genSequential(8))
	c := NewCursor(encoded, 8)
	assert.Panics(func() { c.Skip(3) })
}

func TestCursorSkipRejectsOffQuadBoundary(t *testing.T) {
	assert := assert.New(t)
	encoded := mustEncode(t, genSequential(8))
	c := NewCursor(encoded, 8)
	c.Next()
	assert.Panics(func() { c.Skip(4) })
}

func TestCursorSkipRejectsPastCompleteQuads(t *testing.T) {
	assert := assert.New(t)
	encoded := mustEncode(t, genSequential(6))
	c := NewCursor(encoded, 6)
	assert.Panics(func() { c.Skip(8) })
}

func mustEncode(t *testing.T, values []uint32) []byte {
	t.Helper()
	dst := make([]byte, MaxEncodedLen(len(values)))
	n, err := Encode(values, dst)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return dst[:n]
}
