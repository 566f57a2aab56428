package wire

import "github.com/kungfusheep/ncstream/ncerr"

// maxVarintBytes is the longest a base-128 varint may legally be: 10 groups
// of 7 bits cover a full uint64 (70 bits of room for 64 bits of value).
const maxVarintBytes = 10

// AppendVarint encodes v as a base-128, little-endian varint (7-bit groups,
// MSB = continuation) and appends it to dst, the way the teacher's
// appendVarintb builds glint's own varints.
func AppendVarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v&0x7f)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// VarintSize returns the exact number of bytes AppendVarint would emit for
// v, without allocating — required by §4.2's size pre-computation so a
// submessage's length prefix can be computed before it is written.
func VarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		n++
		v >>= 7
	}
	return n
}

// DecodeVarint reads a base-128 varint from buf starting at 0, returning
// the decoded value and the number of bytes consumed. Reads up to 10
// bytes; fails with ErrMalformed if the tenth byte still has its
// continuation bit set.
func DecodeVarint(buf []byte) (uint64, int, error) {
	var v uint64
	var shift uint
	for i := 0; i < len(buf) && i < maxVarintBytes; i++ {
		b := buf[i]
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
		shift += 7
	}
	if len(buf) >= maxVarintBytes {
		return 0, 0, ncerr.ErrMalformed
	}
	return 0, 0, ncerr.ErrShortBuffer
}

// ReadVarint decodes a varint at the cursor's current position and
// advances past it.
func (c *Cursor) ReadVarint() (uint64, error) {
	// Bound the decode attempt at whatever is actually available so a
	// short buffer reports ErrShortBuffer rather than reading past the
	// active region.
	avail := c.Remaining()
	if avail > maxVarintBytes {
		avail = maxVarintBytes
	}
	window := c.buf[c.pos : c.pos+avail]
	v, n, err := DecodeVarint(window)
	if err != nil {
		return 0, err
	}
	c.pos += n
	return v, nil
}

// WriteVarint appends v to the cursor as a varint.
func (c *Cursor) WriteVarint(v uint64) error {
	c.buf = AppendVarint(c.buf, v)
	c.pos = len(c.buf)
	return nil
}

// Zigzag32 maps a signed 32-bit value to an unsigned one so small
// magnitudes (positive or negative) encode to small varints (§4.2).
func Zigzag32(v int32) uint32 { return uint32((v << 1) ^ (v >> 31)) }

// UnZigzag32 inverts Zigzag32.
func UnZigzag32(u uint32) int32 { return int32(u>>1) ^ -int32(u&1) }

// Zigzag64 is the 64-bit analogue of Zigzag32.
func Zigzag64(v int64) uint64 { return uint64((v << 1) ^ (v >> 63)) }

// UnZigzag64 inverts Zigzag64.
func UnZigzag64(u uint64) int64 { return int64(u>>1) ^ -int64(u&1) }

// Int32Size returns the varint-encoded size of a zigzag-encoded int32.
func Int32Size(v int32) int { return VarintSize(uint64(Zigzag32(v))) }

// Int64Size returns the varint-encoded size of a zigzag-encoded int64.
func Int64Size(v int64) int { return VarintSize(Zigzag64(v)) }

// EncodeSignedVarint sign-extends a signed value to 64 bits and encodes it
// as a plain (non-zigzag) varint — the int32/int64 wrapper described in
// §4.2, distinct from the zigzag sint32/sint64 wrapper above. None of the
// ncStream message fields in §3.1 use this form (they are all unsigned),
// but the primitive codec exposes it for completeness of the contract.
func EncodeSignedVarint(dst []byte, v int64) []byte {
	return AppendVarint(dst, uint64(v))
}

// DecodeSignedVarint inverts EncodeSignedVarint, truncating/sign-preserving
// per §4.2.
func DecodeSignedVarint(buf []byte) (int64, int, error) {
	u, n, err := DecodeVarint(buf)
	return int64(u), n, err
}
