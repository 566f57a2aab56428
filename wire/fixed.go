package wire

import (
	"encoding/binary"

	"github.com/kungfusheep/ncstream/ncerr"
)

// FixedSize32/64 are the exact encoded byte counts for fixed32/fixed64
// values, matching the teacher's convention of exposing a size() alongside
// every encode (§4.2).
const (
	FixedSize32 = 4
	FixedSize64 = 8
)

// EncodeFixed32 appends v as 4 little-endian bytes, regardless of host
// endianness (§4.2, §8.2).
func EncodeFixed32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

// DecodeFixed32 reads a 4-byte little-endian uint32 from the front of buf.
func DecodeFixed32(buf []byte) (uint32, error) {
	if len(buf) < 4 {
		return 0, ncerr.ErrShortBuffer
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// EncodeFixed64 appends v as 8 little-endian bytes.
func EncodeFixed64(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// DecodeFixed64 reads an 8-byte little-endian uint64 from the front of buf.
func DecodeFixed64(buf []byte) (uint64, error) {
	if len(buf) < 8 {
		return 0, ncerr.ErrShortBuffer
	}
	return binary.LittleEndian.Uint64(buf), nil
}

// ReadFixed32 reads a fixed32 value at the cursor and advances.
func (c *Cursor) ReadFixed32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// WriteFixed32 writes v as a fixed32 value.
func (c *Cursor) WriteFixed32(v uint32) error {
	return c.WriteBytes(EncodeFixed32(nil, v))
}

// ReadFixed64 reads a fixed64 value at the cursor and advances.
func (c *Cursor) ReadFixed64() (uint64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// WriteFixed64 writes v as a fixed64 value.
func (c *Cursor) WriteFixed64(v uint64) error {
	return c.WriteBytes(EncodeFixed64(nil, v))
}
