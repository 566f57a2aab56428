package ncstream

import (
	"sync"

	"github.com/kungfusheep/ncstream/wire"
)

// Data describes a bulk payload frame: which variable it belongs to, the
// hyperslab it covers, and the wire layout of the bytes that follow it in
// the stream (§3.1). The core never inspects or decompresses the payload
// itself (§1 Non-goals) — Compress and crc32 are recorded as metadata only.
type Data struct {
	VarName  string
	DataType DataType
	Section  Optional[*Section]
	Bigend   Optional[bool]
	Version  Optional[uint32]
	Compress Optional[Compress]
	Crc32    Optional[uint32]

	Meta Meta
}

var dataPool = sync.Pool{New: func() any { return &Data{} }}

func NewData() *Data { return dataPool.Get().(*Data) }

func WriteData(c *wire.Cursor, d *Data) error {
	if err := writeStringField(c, 1, d.VarName); err != nil {
		return err
	}
	if err := writeEnumField(c, 2, uint64(d.DataType)); err != nil {
		return err
	}
	if d.Section.Defined {
		s := d.Section.Value
		if err := writeSubmessage(c, 3, s.EncodedSize(), func(c *wire.Cursor) error {
			return WriteSection(c, s)
		}); err != nil {
			return err
		}
	}
	if d.Bigend.Defined {
		if err := writeBoolField(c, 4, d.Bigend.Value); err != nil {
			return err
		}
	}
	if d.Version.Defined {
		if err := writeVarintField(c, 5, uint64(d.Version.Value)); err != nil {
			return err
		}
	}
	if d.Compress.Defined {
		if err := writeEnumField(c, 6, uint64(d.Compress.Value)); err != nil {
			return err
		}
	}
	if d.Crc32.Defined {
		if err := writeFixed32Field(c, 7, d.Crc32.Value); err != nil {
			return err
		}
	}
	return nil
}

// ReadData decodes a Data message and applies its default fill-in (§8.4):
// Bigend defaults to true, Version and Crc32 default to 0.
func ReadData(c *wire.Cursor) (*Data, error) {
	d := NewData()
	for !c.AtEnd() {
		wt, fieldNo, err := c.ReadTag()
		if err != nil {
			d.Reclaim()
			return nil, err
		}
		switch fieldNo {
		case 1:
			v, err := readStringValue(c, wt)
			if err != nil {
				d.Reclaim()
				return nil, err
			}
			d.VarName = v
		case 2:
			v, err := readVarintValue(c, wt)
			if err != nil {
				d.Reclaim()
				return nil, err
			}
			d.DataType = DataType(v)
		case 3:
			var s *Section
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				s, rerr = ReadSection(c)
				return rerr
			}); err != nil {
				d.Reclaim()
				return nil, err
			}
			d.Section = Some(s)
		case 4:
			v, err := readBoolValue(c, wt)
			if err != nil {
				d.Reclaim()
				return nil, err
			}
			d.Bigend = Some(v)
		case 5:
			v, err := readVarintValue(c, wt)
			if err != nil {
				d.Reclaim()
				return nil, err
			}
			d.Version = Some(uint32(v))
		case 6:
			v, err := readVarintValue(c, wt)
			if err != nil {
				d.Reclaim()
				return nil, err
			}
			d.Compress = Some(Compress(v))
		case 7:
			v, err := readFixed32Value(c, wt)
			if err != nil {
				d.Reclaim()
				return nil, err
			}
			d.Crc32 = Some(v)
		default:
			if err := c.SkipField(wt); err != nil {
				d.Reclaim()
				return nil, err
			}
		}
	}
	if !d.Bigend.Defined {
		d.Bigend = Some(true)
	}
	if !d.Version.Defined {
		d.Version = Some[uint32](0)
	}
	if !d.Crc32.Defined {
		d.Crc32 = Some[uint32](0)
	}
	return d, nil
}

func (d *Data) EncodedSize() int {
	total := fieldSizeString(1, d.VarName)
	total += fieldSizeVarint(2, uint64(d.DataType))
	if d.Section.Defined {
		total += fieldSizeSubmessage(3, d.Section.Value.EncodedSize())
	}
	if d.Bigend.Defined {
		total += fieldSizeBool(4)
	}
	if d.Version.Defined {
		total += fieldSizeVarint(5, uint64(d.Version.Value))
	}
	if d.Compress.Defined {
		total += fieldSizeVarint(6, uint64(d.Compress.Value))
	}
	if d.Crc32.Defined {
		total += fieldSizeFixed32(7)
	}
	return total
}

// Reclaim reclaims the owned Section (if any), leaves-first, before
// returning d to the pool (§4.4.3).
func (d *Data) Reclaim() {
	if d.Section.Defined {
		d.Section.Value.Reclaim()
	}
	*d = Data{}
	dataPool.Put(d)
}
