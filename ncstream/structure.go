package ncstream

import (
	"sync"

	"github.com/kungfusheep/ncstream/wire"
)

// Structure is a compound (record-valued) variable: it carries its own
// shape and attributes plus nested Variables and, recursively, nested
// Structures (§3.1).
type Structure struct {
	Name     string
	DataType DataType
	Shape    []*Dimension
	Atts     []*Attribute
	Vars     []*Variable
	Structs  []*Structure

	Meta Meta
}

var structurePool = sync.Pool{New: func() any { return &Structure{} }}

func NewStructure() *Structure { return structurePool.Get().(*Structure) }

func WriteStructure(c *wire.Cursor, s *Structure) error {
	if err := writeStringField(c, 1, s.Name); err != nil {
		return err
	}
	if err := writeEnumField(c, 2, uint64(s.DataType)); err != nil {
		return err
	}
	for _, d := range s.Shape {
		if err := writeSubmessage(c, 3, d.EncodedSize(), func(c *wire.Cursor) error {
			return WriteDimension(c, d)
		}); err != nil {
			return err
		}
	}
	for _, a := range s.Atts {
		if err := writeSubmessage(c, 4, a.EncodedSize(), func(c *wire.Cursor) error {
			return WriteAttribute(c, a)
		}); err != nil {
			return err
		}
	}
	for _, v := range s.Vars {
		if err := writeSubmessage(c, 5, v.EncodedSize(), func(c *wire.Cursor) error {
			return WriteVariable(c, v)
		}); err != nil {
			return err
		}
	}
	for _, child := range s.Structs {
		if err := writeSubmessage(c, 6, child.EncodedSize(), func(c *wire.Cursor) error {
			return WriteStructure(c, child)
		}); err != nil {
			return err
		}
	}
	return nil
}

func ReadStructure(c *wire.Cursor) (*Structure, error) {
	s := NewStructure()
	for !c.AtEnd() {
		wt, fieldNo, err := c.ReadTag()
		if err != nil {
			s.Reclaim()
			return nil, err
		}
		switch fieldNo {
		case 1:
			v, err := readStringValue(c, wt)
			if err != nil {
				s.Reclaim()
				return nil, err
			}
			s.Name = v
		case 2:
			n, err := readVarintValue(c, wt)
			if err != nil {
				s.Reclaim()
				return nil, err
			}
			s.DataType = DataType(n)
		case 3:
			var d *Dimension
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				d, rerr = ReadDimension(c)
				return rerr
			}); err != nil {
				s.Reclaim()
				return nil, err
			}
			s.Shape = append(s.Shape, d)
		case 4:
			var a *Attribute
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				a, rerr = ReadAttribute(c)
				return rerr
			}); err != nil {
				s.Reclaim()
				return nil, err
			}
			s.Atts = append(s.Atts, a)
		case 5:
			var v *Variable
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				v, rerr = ReadVariable(c)
				return rerr
			}); err != nil {
				s.Reclaim()
				return nil, err
			}
			s.Vars = append(s.Vars, v)
		case 6:
			var child *Structure
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				child, rerr = ReadStructure(c)
				return rerr
			}); err != nil {
				s.Reclaim()
				return nil, err
			}
			s.Structs = append(s.Structs, child)
		default:
			if err := c.SkipField(wt); err != nil {
				s.Reclaim()
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *Structure) EncodedSize() int {
	total := fieldSizeString(1, s.Name)
	total += fieldSizeVarint(2, uint64(s.DataType))
	for _, d := range s.Shape {
		total += fieldSizeSubmessage(3, d.EncodedSize())
	}
	for _, a := range s.Atts {
		total += fieldSizeSubmessage(4, a.EncodedSize())
	}
	for _, v := range s.Vars {
		total += fieldSizeSubmessage(5, v.EncodedSize())
	}
	for _, child := range s.Structs {
		total += fieldSizeSubmessage(6, child.EncodedSize())
	}
	return total
}

// Reclaim reclaims Shape, Atts, Vars, then nested Structs leaves-first
// before returning s to the pool (§4.4.3).
func (s *Structure) Reclaim() {
	for _, d := range s.Shape {
		d.Reclaim()
	}
	for _, a := range s.Atts {
		a.Reclaim()
	}
	for _, v := range s.Vars {
		v.Reclaim()
	}
	for _, child := range s.Structs {
		child.Reclaim()
	}
	*s = Structure{}
	structurePool.Put(s)
}
