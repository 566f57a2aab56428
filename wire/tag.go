package wire

import (
	"github.com/kungfusheep/ncstream/log"
	"github.com/kungfusheep/ncstream/ncerr"
)

// WireType identifies the payload shape carried by a tag (§4.3).
type WireType uint8

const (
	WireVarint   WireType = 0
	WireFixed64  WireType = 1
	WireCounted  WireType = 2 // length-prefixed: varint length + raw bytes
	WireFixed32  WireType = 5
)

// EncodeTag packs (fieldNo<<3)|wiretype into a single varint tag.
func EncodeTag(fieldNo uint32, wt WireType) uint64 {
	return uint64(fieldNo)<<3 | uint64(wt)
}

// DecodeTag splits a decoded tag varint back into wiretype and field
// number.
func DecodeTag(tag uint64) (wt WireType, fieldNo uint32) {
	return WireType(tag & 0x7), uint32(tag >> 3)
}

// TagSize returns the encoded size of the tag for fieldNo — needed by
// M_size (§4.4.4) since every present field contributes its tag size plus
// its payload size.
func TagSize(fieldNo uint32, wt WireType) int {
	return VarintSize(EncodeTag(fieldNo, wt))
}

// ReadTag reads a tag varint at the cursor's current position. Returns
// ErrShortBuffer-wrapped Eof (AtEnd()) when the active region is
// exhausted cleanly — callers should check AtEnd() before calling ReadTag
// to distinguish "no more fields" from a real error.
func (c *Cursor) ReadTag() (wt WireType, fieldNo uint32, err error) {
	tag, err := c.ReadVarint()
	if err != nil {
		return 0, 0, err
	}
	wt, fieldNo = DecodeTag(tag)
	return wt, fieldNo, nil
}

// WriteTag emits a tag for the given field number and wiretype.
func (c *Cursor) WriteTag(fieldNo uint32, wt WireType) error {
	return c.WriteVarint(EncodeTag(fieldNo, wt))
}

// SkipField consumes the payload of an unknown field without interpreting
// it — the forward-compatibility path (§4.3) exercised whenever a message
// reader encounters a field number not in its case list. Each skip is
// logged at debug level.
func (c *Cursor) SkipField(wt WireType) error {
	log.Debug("skipping unknown field", "wiretype", wt)
	switch wt {
	case WireVarint:
		_, err := c.ReadVarint()
		if err == nil {
			c.skippedFields++
		}
		return err
	case WireFixed64:
		_, err := c.ReadBytes(FixedSize64)
		if err == nil {
			c.skippedFields++
		}
		return err
	case WireFixed32:
		_, err := c.ReadBytes(FixedSize32)
		if err == nil {
			c.skippedFields++
		}
		return err
	case WireCounted:
		_, err := c.ReadLengthPrefixedBytes()
		if err == nil {
			c.skippedFields++
		}
		return err
	default:
		return ncerr.ErrMalformed
	}
}

// SkippedFields reports how many unknown field numbers this cursor's
// SkipField has consumed so far, for callers that want to feed §4.10's
// forward-compat path into metrics.
func (c *Cursor) SkippedFields() int { return c.skippedFields }
