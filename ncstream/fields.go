package ncstream

import (
	"github.com/kungfusheep/ncstream/ncerr"
	"github.com/kungfusheep/ncstream/wire"
)

// This file holds the small per-kind write/read/size helpers shared by
// every message's Write/Read/Size functions (§4.4.1, §4.4.2, §4.4.4).
// Each message type still owns its own field list and ordering — these
// only factor out "tag then payload" so that list reads cleanly, the way
// the teacher's ast_write_primitive/ast_get_size calls do one kind at a
// time per field (ncStreamx.c), generalized per spec Design Notes into
// static per-field calls instead of a runtime type-tag dispatch.

func writeStringField(c *wire.Cursor, fieldNo uint32, v string) error {
	if err := c.WriteTag(fieldNo, wire.WireCounted); err != nil {
		return err
	}
	return c.WriteString(v)
}

func writeBytesField(c *wire.Cursor, fieldNo uint32, v []byte) error {
	if err := c.WriteTag(fieldNo, wire.WireCounted); err != nil {
		return err
	}
	return c.WriteLengthPrefixedBytes(v)
}

func writeVarintField(c *wire.Cursor, fieldNo uint32, v uint64) error {
	if err := c.WriteTag(fieldNo, wire.WireVarint); err != nil {
		return err
	}
	return c.WriteVarint(v)
}

// writeEnumField is an alias for writeVarintField: enums are always
// emitted as varint on the wire (§4.4.1), even though the schema's size
// accounting treats the tag as "counted" for bookkeeping purposes only.
func writeEnumField(c *wire.Cursor, fieldNo uint32, v uint64) error {
	return writeVarintField(c, fieldNo, v)
}

func writeBoolField(c *wire.Cursor, fieldNo uint32, v bool) error {
	var u uint64
	if v {
		u = 1
	}
	return writeVarintField(c, fieldNo, u)
}

func writeFixed32Field(c *wire.Cursor, fieldNo uint32, v uint32) error {
	if err := c.WriteTag(fieldNo, wire.WireFixed32); err != nil {
		return err
	}
	return c.WriteFixed32(v)
}

func readStringValue(c *wire.Cursor, wt wire.WireType) (string, error) {
	if wt != wire.WireCounted {
		return "", ncerr.ErrMalformed
	}
	return c.ReadString()
}

func readBytesValue(c *wire.Cursor, wt wire.WireType) ([]byte, error) {
	if wt != wire.WireCounted {
		return nil, ncerr.ErrMalformed
	}
	b, err := c.ReadLengthPrefixedBytes()
	if err != nil {
		return nil, err
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func readVarintValue(c *wire.Cursor, wt wire.WireType) (uint64, error) {
	if wt != wire.WireVarint {
		return 0, ncerr.ErrMalformed
	}
	return c.ReadVarint()
}

func readBoolValue(c *wire.Cursor, wt wire.WireType) (bool, error) {
	v, err := readVarintValue(c, wt)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func readFixed32Value(c *wire.Cursor, wt wire.WireType) (uint32, error) {
	if wt != wire.WireFixed32 {
		return 0, ncerr.ErrMalformed
	}
	return c.ReadFixed32()
}

func fieldSizeString(fieldNo uint32, v string) int {
	return wire.TagSize(fieldNo, wire.WireCounted) + wire.StringSize(v)
}

func fieldSizeBytes(fieldNo uint32, v []byte) int {
	return wire.TagSize(fieldNo, wire.WireCounted) + wire.BytesSize(v)
}

func fieldSizeVarint(fieldNo uint32, v uint64) int {
	return wire.TagSize(fieldNo, wire.WireVarint) + wire.VarintSize(v)
}

func fieldSizeBool(fieldNo uint32) int {
	// Booleans always encode as 0 or 1, a single-byte varint.
	return wire.TagSize(fieldNo, wire.WireVarint) + 1
}

func fieldSizeFixed32(fieldNo uint32) int {
	return wire.TagSize(fieldNo, wire.WireFixed32) + wire.FixedSize32
}

// writeSubmessage emits a counted tag, the submessage's precomputed size
// as a varint, then the submessage body itself — submessage_size MUST be
// computed, not estimated (§4.4.1).
func writeSubmessage(c *wire.Cursor, fieldNo uint32, size int, write func(*wire.Cursor) error) error {
	if err := c.WriteTag(fieldNo, wire.WireCounted); err != nil {
		return err
	}
	if err := c.WriteVarint(uint64(size)); err != nil {
		return err
	}
	if err := c.Mark(size); err != nil {
		return err
	}
	if err := write(c); err != nil {
		return err
	}
	return c.Unmark()
}

// readSubmessage expects a counted wiretype, reads the varint size,
// bounds a region to exactly that many bytes, and invokes read within it
// (§4.4.2). Failing to consume exactly `size` bytes trips Unmark's
// FramingError.
func readSubmessage(c *wire.Cursor, wt wire.WireType, read func(*wire.Cursor) error) error {
	if wt != wire.WireCounted {
		return ncerr.ErrMalformed
	}
	size, err := c.ReadVarint()
	if err != nil {
		return err
	}
	if int(size) > c.Remaining() {
		return ncerr.ErrShortBuffer
	}
	if err := c.Mark(int(size)); err != nil {
		return err
	}
	if err := read(c); err != nil {
		return err
	}
	return c.Unmark()
}

func fieldSizeSubmessage(fieldNo uint32, size int) int {
	return wire.TagSize(fieldNo, wire.WireCounted) + wire.VarintSize(uint64(size)) + size
}
