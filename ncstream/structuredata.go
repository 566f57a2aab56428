package ncstream

import (
	"sync"

	"github.com/kungfusheep/ncstream/ncerr"
	"github.com/kungfusheep/ncstream/wire"
)

// StructureData carries one or more rows of a compound (Structure/
// Sequence) variable's packed record bytes, plus the bookkeeping needed to
// find variable-length members within Data (§3.1). Data is required;
// ReadStructureData rejects a message where it never appears on the wire.
type StructureData struct {
	Member    []uint32
	Data      []byte
	HeapCount []uint32
	SData     []string
	Nrows     Optional[uint64]

	Meta Meta
}

var structureDataPool = sync.Pool{New: func() any { return &StructureData{} }}

func NewStructureData() *StructureData { return structureDataPool.Get().(*StructureData) }

func WriteStructureData(c *wire.Cursor, s *StructureData) error {
	for _, m := range s.Member {
		if err := writeVarintField(c, 1, uint64(m)); err != nil {
			return err
		}
	}
	if err := writeBytesField(c, 2, s.Data); err != nil {
		return err
	}
	for _, h := range s.HeapCount {
		if err := writeVarintField(c, 3, uint64(h)); err != nil {
			return err
		}
	}
	for _, sd := range s.SData {
		if err := writeStringField(c, 4, sd); err != nil {
			return err
		}
	}
	if s.Nrows.Defined {
		if err := writeVarintField(c, 5, s.Nrows.Value); err != nil {
			return err
		}
	}
	return nil
}

// ReadStructureData decodes a StructureData message and applies its
// default fill-in (§8.4): Nrows defaults to 1. Data is required (§3.1);
// its absence is reported via ncerr.NewMissingField.
func ReadStructureData(c *wire.Cursor) (*StructureData, error) {
	s := NewStructureData()
	dataSeen := false
	for !c.AtEnd() {
		wt, fieldNo, err := c.ReadTag()
		if err != nil {
			s.Reclaim()
			return nil, err
		}
		switch fieldNo {
		case 1:
			v, err := readVarintValue(c, wt)
			if err != nil {
				s.Reclaim()
				return nil, err
			}
			s.Member = append(s.Member, uint32(v))
		case 2:
			b, err := readBytesValue(c, wt)
			if err != nil {
				s.Reclaim()
				return nil, err
			}
			s.Data = b
			dataSeen = true
		case 3:
			v, err := readVarintValue(c, wt)
			if err != nil {
				s.Reclaim()
				return nil, err
			}
			s.HeapCount = append(s.HeapCount, uint32(v))
		case 4:
			v, err := readStringValue(c, wt)
			if err != nil {
				s.Reclaim()
				return nil, err
			}
			s.SData = append(s.SData, v)
		case 5:
			v, err := readVarintValue(c, wt)
			if err != nil {
				s.Reclaim()
				return nil, err
			}
			s.Nrows = Some(v)
		default:
			if err := c.SkipField(wt); err != nil {
				s.Reclaim()
				return nil, err
			}
		}
	}
	if !dataSeen {
		s.Reclaim()
		return nil, ncerr.NewMissingField("StructureData.data")
	}
	if !s.Nrows.Defined {
		s.Nrows = Some[uint64](1)
	}
	return s, nil
}

func (s *StructureData) EncodedSize() int {
	total := 0
	for _, m := range s.Member {
		total += fieldSizeVarint(1, uint64(m))
	}
	total += fieldSizeBytes(2, s.Data)
	for _, h := range s.HeapCount {
		total += fieldSizeVarint(3, uint64(h))
	}
	for _, sd := range s.SData {
		total += fieldSizeString(4, sd)
	}
	if s.Nrows.Defined {
		total += fieldSizeVarint(5, s.Nrows.Value)
	}
	return total
}

func (s *StructureData) Reclaim() {
	*s = StructureData{}
	structureDataPool.Put(s)
}
