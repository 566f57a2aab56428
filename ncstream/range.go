package ncstream

import (
	"sync"

	"github.com/kungfusheep/ncstream/ncerr"
	"github.com/kungfusheep/ncstream/wire"
)

// Range describes one dimension of a hyperslab within a Section: a start
// offset, a required size, and a stride (§3.1).
type Range struct {
	Start  Optional[uint64]
	Size   uint64
	Stride Optional[uint64]

	Meta Meta
}

var rangePool = sync.Pool{New: func() any { return &Range{} }}

func NewRange() *Range { return rangePool.Get().(*Range) }

func WriteRange(c *wire.Cursor, r *Range) error {
	if r.Start.Defined {
		if err := writeVarintField(c, 1, r.Start.Value); err != nil {
			return err
		}
	}
	if err := writeVarintField(c, 2, r.Size); err != nil {
		return err
	}
	if r.Stride.Defined {
		if err := writeVarintField(c, 3, r.Stride.Value); err != nil {
			return err
		}
	}
	return nil
}

// ReadRange decodes a Range and applies its default fill-in (§8.4): Start
// defaults to 0, Stride defaults to 1.
func ReadRange(c *wire.Cursor) (*Range, error) {
	r := NewRange()
	sizeSeen := false
	for !c.AtEnd() {
		wt, fieldNo, err := c.ReadTag()
		if err != nil {
			r.Reclaim()
			return nil, err
		}
		switch fieldNo {
		case 1:
			v, err := readVarintValue(c, wt)
			if err != nil {
				r.Reclaim()
				return nil, err
			}
			r.Start = Some(v)
		case 2:
			v, err := readVarintValue(c, wt)
			if err != nil {
				r.Reclaim()
				return nil, err
			}
			r.Size = v
			sizeSeen = true
		case 3:
			v, err := readVarintValue(c, wt)
			if err != nil {
				r.Reclaim()
				return nil, err
			}
			r.Stride = Some(v)
		default:
			if err := c.SkipField(wt); err != nil {
				r.Reclaim()
				return nil, err
			}
		}
	}
	if !sizeSeen {
		r.Reclaim()
		return nil, ncerr.NewMissingField("Range.size")
	}
	if !r.Start.Defined {
		r.Start = Some[uint64](0)
	}
	if !r.Stride.Defined {
		r.Stride = Some[uint64](1)
	}
	return r, nil
}

func (r *Range) EncodedSize() int {
	total := 0
	if r.Start.Defined {
		total += fieldSizeVarint(1, r.Start.Value)
	}
	total += fieldSizeVarint(2, r.Size)
	if r.Stride.Defined {
		total += fieldSizeVarint(3, r.Stride.Value)
	}
	return total
}

func (r *Range) Reclaim() {
	*r = Range{}
	rangePool.Put(r)
}

// Section is an ordered list of Ranges describing a hyperslab (§3.1).
type Section struct {
	RangeList []*Range

	Meta Meta
}

var sectionPool = sync.Pool{New: func() any { return &Section{} }}

func NewSection() *Section { return sectionPool.Get().(*Section) }

func WriteSection(c *wire.Cursor, s *Section) error {
	for _, r := range s.RangeList {
		if err := writeSubmessage(c, 1, r.EncodedSize(), func(c *wire.Cursor) error {
			return WriteRange(c, r)
		}); err != nil {
			return err
		}
	}
	return nil
}

func ReadSection(c *wire.Cursor) (*Section, error) {
	s := NewSection()
	for !c.AtEnd() {
		wt, fieldNo, err := c.ReadTag()
		if err != nil {
			s.Reclaim()
			return nil, err
		}
		switch fieldNo {
		case 1:
			var r *Range
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				r, rerr = ReadRange(c)
				return rerr
			}); err != nil {
				s.Reclaim()
				return nil, err
			}
			s.RangeList = append(s.RangeList, r)
		default:
			if err := c.SkipField(wt); err != nil {
				s.Reclaim()
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *Section) EncodedSize() int {
	total := 0
	for _, r := range s.RangeList {
		total += fieldSizeSubmessage(1, r.EncodedSize())
	}
	return total
}

func (s *Section) Reclaim() {
	for _, r := range s.RangeList {
		r.Reclaim()
	}
	*s = Section{}
	sectionPool.Put(s)
}
