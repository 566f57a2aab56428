// Package wire implements the primitive ncStream/protobuf wire codec:
// a byte cursor with a bounded-region stack (§4.1), varint/zigzag/fixed
// primitives and their exact size functions (§4.2), and the tag/wiretype
// framer (§4.3). None of this package knows about any ncStream message
// type; it is the leaf layer every message reader/writer is built on,
// the way the teacher's Reader/Buffer pair underlies glint's generic
// codec.
package wire

import "github.com/kungfusheep/ncstream/ncerr"

// Mode selects whether a Cursor reads from or writes into its buffer.
type Mode int

const (
	Read Mode = iota
	Write
)

// Cursor is a mutable position over a byte slice with an auxiliary stack
// of absolute end-positions ("regions") used to bound length-prefixed
// submessages (§4.1). In Read mode the buffer is fixed-size input; in
// Write mode the buffer grows by append and the region stack instead
// serves as a writer-side self-check that each submessage emits exactly
// the number of bytes its precomputed size promised.
type Cursor struct {
	mode    Mode
	buf     []byte
	pos     int
	regions []int
	limits  Limits

	skippedFields int
}

// NewCursor creates a Cursor over buf in the given mode with no resource
// limits (the core itself is config-free, §6.4). For Read, buf is the
// input to decode. For Write, buf is the initial (possibly nil) backing
// array the encoder appends to.
func NewCursor(mode Mode, buf []byte) *Cursor {
	return &Cursor{mode: mode, buf: buf}
}

// NewCursorWithLimits is NewCursor with caller-supplied resource bounds,
// for embedders decoding untrusted input (see DefaultLimits).
func NewCursorWithLimits(mode Mode, buf []byte, limits Limits) *Cursor {
	return &Cursor{mode: mode, buf: buf, limits: limits}
}

// Pos returns the current read/write offset.
func (c *Cursor) Pos() int { return c.pos }

// Bytes returns the cursor's backing buffer. In Write mode this is the
// encoded output built up so far.
func (c *Cursor) Bytes() []byte { return c.buf }

// end returns the effective end-of-buffer: the top of the region stack if
// a region is active, otherwise the length of the whole backing buffer.
func (c *Cursor) end() int {
	if n := len(c.regions); n > 0 {
		return c.regions[n-1]
	}
	return len(c.buf)
}

// Remaining reports how many bytes are left before the active region (or
// whole buffer) ends.
func (c *Cursor) Remaining() int { return c.end() - c.pos }

// AtEnd reports whether the cursor has reached the active end. Reaching
// this point is Eof, a normal termination signal for a message reader,
// not an error (§4.1).
func (c *Cursor) AtEnd() bool { return c.pos >= c.end() }

// ReadBytes consumes and returns the next n bytes. Fails with
// ErrShortBuffer if n would cross the active region end.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.pos+n > c.end() {
		return nil, ncerr.ErrShortBuffer
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadByte consumes and returns a single byte.
func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteBytes appends src to the buffer and advances the position. Write
// mode has no fixed capacity, so this never fails on bounds; it can only
// fail indirectly via Unmark catching a writer that emitted the wrong
// number of bytes for a marked region.
func (c *Cursor) WriteBytes(src []byte) error {
	c.buf = append(c.buf, src...)
	c.pos = len(c.buf)
	return nil
}

// WriteByte appends a single byte.
func (c *Cursor) WriteByte(b byte) error {
	return c.WriteBytes([]byte{b})
}

// Mark pushes pos+n onto the region stack, bounding a length-prefixed
// submessage or length-prefixed scalar to exactly n more bytes. While a
// region is active, the cursor's effective end-of-buffer is the top of
// the stack. Fails if limits.MaxDepth is set and this region would
// exceed it.
func (c *Cursor) Mark(n int) error {
	if err := c.limits.checkDepth(len(c.regions) + 1); err != nil {
		return err
	}
	c.regions = append(c.regions, c.pos+n)
	return nil
}

// Unmark pops the top region. Fails with ErrFramingError if the current
// position does not equal the popped end, which indicates a
// length-prefix mismatch (a reader that didn't consume exactly what the
// length promised, or a writer whose precomputed size was wrong).
func (c *Cursor) Unmark() error {
	n := len(c.regions)
	if n == 0 {
		return ncerr.ErrFramingError
	}
	top := c.regions[n-1]
	c.regions = c.regions[:n-1]
	if c.pos != top {
		return ncerr.ErrFramingError
	}
	return nil
}
