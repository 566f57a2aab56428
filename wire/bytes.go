package wire

import "unsafe"

// BytesSize returns the encoded size of a length-prefixed byte field:
// varint length followed by the raw bytes (§4.2).
func BytesSize(v []byte) int { return VarintSize(uint64(len(v))) + len(v) }

// StringSize returns the encoded size of a length-prefixed UTF-8 string
// field. Strings use the same on-wire encoding as bytes (§4.2).
func StringSize(s string) int { return VarintSize(uint64(len(s))) + len(s) }

// ReadLengthPrefixedBytes decodes a length-prefixed bytes field at the cursor: a varint
// length followed by that many raw bytes. The declared length is checked
// against limits.MaxBytesFieldLen before the backing buffer is sliced, so
// an oversized length can't be used to drive a huge allocation downstream.
func (c *Cursor) ReadLengthPrefixedBytes() ([]byte, error) {
	n, err := c.ReadVarint()
	if err != nil {
		return nil, err
	}
	if err := c.limits.checkBytesLen(int(n)); err != nil {
		return nil, err
	}
	return c.ReadBytes(int(n))
}

// WriteLengthPrefixedBytes emits a varint length followed by v.
func (c *Cursor) WriteLengthPrefixedBytes(v []byte) error {
	if err := c.WriteVarint(uint64(len(v))); err != nil {
		return err
	}
	return c.WriteBytes(v)
}

// ReadString decodes a length-prefixed UTF-8 string. The on-wire form has
// no trailing NUL; the decoder does not add one either — Go strings carry
// their own length.
func (c *Cursor) ReadString() (string, error) {
	b, err := c.ReadLengthPrefixedBytes()
	if err != nil {
		return "", err
	}
	// Copy out of the cursor's backing buffer: the caller may outlive the
	// input slice being reused or reclaimed.
	cp := make([]byte, len(b))
	copy(cp, b)
	return *(*string)(unsafe.Pointer(&cp)), nil
}

// WriteString emits a varint length followed by the string's UTF-8 bytes.
func (c *Cursor) WriteString(s string) error {
	if err := c.WriteVarint(uint64(len(s))); err != nil {
		return err
	}
	return c.WriteBytes([]byte(s))
}
