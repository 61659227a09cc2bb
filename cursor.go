package streamvbyte

// Cursor provides sequential and skip-ahead decoding over a Stream VByte
// stream without materializing the whole output slice at once. It is the
// Stream VByte analogue of a FastPFOR-style random access Reader: instead of
// pre-decoding a fixed block, it walks the control stream incrementally and
// decodes data-stream bytes on demand.
//
// A Cursor is not safe for concurrent use. Create one Cursor per goroutine
// over the same underlying buffer if concurrent access is needed.
type Cursor struct {
	control []byte
	data    []byte
	count   int

	nextIndex  int // index of the next value Next()/DecodeSlice() will produce
	quad       int // quad containing nextIndex
	posInQuad  int // position within that quad
	dataOffset int // data-stream offset of the start of the current quad
	quadOffset int // data-stream offset within the current quad, up to posInQuad
}

// NewCursor creates a Cursor positioned at the first of count values encoded
// in encoded.
func NewCursor(encoded []byte, count int) *Cursor {
	numControlBytes := ControlStreamLen(count)
	c := &Cursor{
		count: count,
	}
	if numControlBytes <= len(encoded) {
		c.control = encoded[:numControlBytes]
		c.data = encoded[numControlBytes:]
	}
	return c
}

// HasMore reports whether there are more values to decode.
func (c *Cursor) HasMore() bool {
	return c.nextIndex < c.count
}

// Pos returns the index of the next value that Next or DecodeSlice will
// produce.
func (c *Cursor) Pos() int {
	return c.nextIndex
}

// InputConsumed returns the total input bytes scanned so far: the full
// control stream plus every data-stream byte decoded or skipped.
func (c *Cursor) InputConsumed() int {
	return len(c.control) + c.dataOffset + c.quadOffset
}

// currentControlByte returns the control byte covering nextIndex.
func (c *Cursor) currentControlByte() byte {
	if c.quad < len(c.control) {
		return c.control[c.quad]
	}
	return 0
}

// Next decodes and returns the next value. ok is false once all count
// values have been produced.
func (c *Cursor) Next() (value uint32, ok bool) {
	if !c.HasMore() {
		return 0, false
	}

	ctrl := c.currentControlByte()
	l := int((ctrl>>(uint(c.posInQuad)*2))&0x03) + 1
	value = decodeNumScalar(c.data[c.dataOffset+c.quadOffset:], l)

	c.quadOffset += l
	c.posInQuad++
	c.nextIndex++

	if c.posInQuad == 4 {
		c.dataOffset += c.quadOffset
		c.quadOffset = 0
		c.posInQuad = 0
		c.quad++
	}

	return value, true
}

// Skip advances past n values without decoding them. n must be a multiple
// of 4, the Cursor must be on a quad boundary, and the skip must not reach
// past the last complete quad of the stream, mirroring the contract of the
// reference implementation this is ported from: skipping into a trailing
// partial quad isn't supported because there's no way to divide it further
// without decoding. Skip panics if any of these conditions is violated.
func (c *Cursor) Skip(n int) {
	if n%4 != 0 {
		panic("streamvbyte: Cursor.Skip: n must be a multiple of 4")
	}
	if c.posInQuad != 0 {
		panic("streamvbyte: Cursor.Skip: must be called on a quad boundary")
	}
	quadsToSkip := n / 4
	completeQuads := c.count / 4
	if c.quad+quadsToSkip > completeQuads {
		panic("streamvbyte: Cursor.Skip: can't skip past the end of complete quads")
	}

	for i := 0; i < quadsToSkip; i++ {
		c.dataOffset += quadPayloadLen(c.control[c.quad])
		c.quad++
	}
	c.nextIndex += n
}

// DecodeSlice decodes into dst, stopping when dst is full or there are no
// more values. It returns the number of values written.
func (c *Cursor) DecodeSlice(dst []uint32) int {
	written := 0
	for written < len(dst) && c.HasMore() {
		v, _ := c.Next()
		dst[written] = v
		written++
	}
	return written
}
