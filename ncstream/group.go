package ncstream

import (
	"sync"

	"github.com/kungfusheep/ncstream/wire"
)

// Group is the hierarchical container at the heart of the schema: it owns
// Dimension declarations, Variables, Structures, Attributes, nested
// Groups, and EnumTypedefs (§3.1). The graph walker visits these fields in
// this exact order (§4.6).
type Group struct {
	Name      string
	Dims      []*Dimension
	Vars      []*Variable
	Structs   []*Structure
	Atts      []*Attribute
	Groups    []*Group
	EnumTypes []*EnumTypedef

	Meta Meta
}

var groupPool = sync.Pool{New: func() any { return &Group{} }}

func NewGroup() *Group { return groupPool.Get().(*Group) }

func WriteGroup(c *wire.Cursor, g *Group) error {
	if err := writeStringField(c, 1, g.Name); err != nil {
		return err
	}
	for _, d := range g.Dims {
		if err := writeSubmessage(c, 2, d.EncodedSize(), func(c *wire.Cursor) error {
			return WriteDimension(c, d)
		}); err != nil {
			return err
		}
	}
	for _, v := range g.Vars {
		if err := writeSubmessage(c, 3, v.EncodedSize(), func(c *wire.Cursor) error {
			return WriteVariable(c, v)
		}); err != nil {
			return err
		}
	}
	for _, s := range g.Structs {
		if err := writeSubmessage(c, 4, s.EncodedSize(), func(c *wire.Cursor) error {
			return WriteStructure(c, s)
		}); err != nil {
			return err
		}
	}
	for _, a := range g.Atts {
		if err := writeSubmessage(c, 5, a.EncodedSize(), func(c *wire.Cursor) error {
			return WriteAttribute(c, a)
		}); err != nil {
			return err
		}
	}
	for _, child := range g.Groups {
		if err := writeSubmessage(c, 6, child.EncodedSize(), func(c *wire.Cursor) error {
			return WriteGroup(c, child)
		}); err != nil {
			return err
		}
	}
	for _, et := range g.EnumTypes {
		if err := writeSubmessage(c, 7, et.EncodedSize(), func(c *wire.Cursor) error {
			return WriteEnumTypedef(c, et)
		}); err != nil {
			return err
		}
	}
	return nil
}

func ReadGroup(c *wire.Cursor) (*Group, error) {
	g := NewGroup()
	for !c.AtEnd() {
		wt, fieldNo, err := c.ReadTag()
		if err != nil {
			g.Reclaim()
			return nil, err
		}
		switch fieldNo {
		case 1:
			v, err := readStringValue(c, wt)
			if err != nil {
				g.Reclaim()
				return nil, err
			}
			g.Name = v
		case 2:
			var d *Dimension
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				d, rerr = ReadDimension(c)
				return rerr
			}); err != nil {
				g.Reclaim()
				return nil, err
			}
			g.Dims = append(g.Dims, d)
		case 3:
			var v *Variable
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				v, rerr = ReadVariable(c)
				return rerr
			}); err != nil {
				g.Reclaim()
				return nil, err
			}
			g.Vars = append(g.Vars, v)
		case 4:
			var s *Structure
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				s, rerr = ReadStructure(c)
				return rerr
			}); err != nil {
				g.Reclaim()
				return nil, err
			}
			g.Structs = append(g.Structs, s)
		case 5:
			var a *Attribute
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				a, rerr = ReadAttribute(c)
				return rerr
			}); err != nil {
				g.Reclaim()
				return nil, err
			}
			g.Atts = append(g.Atts, a)
		case 6:
			var child *Group
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				child, rerr = ReadGroup(c)
				return rerr
			}); err != nil {
				g.Reclaim()
				return nil, err
			}
			g.Groups = append(g.Groups, child)
		case 7:
			var et *EnumTypedef
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				et, rerr = ReadEnumTypedef(c)
				return rerr
			}); err != nil {
				g.Reclaim()
				return nil, err
			}
			g.EnumTypes = append(g.EnumTypes, et)
		default:
			if err := c.SkipField(wt); err != nil {
				g.Reclaim()
				return nil, err
			}
		}
	}
	return g, nil
}

func (g *Group) EncodedSize() int {
	total := fieldSizeString(1, g.Name)
	for _, d := range g.Dims {
		total += fieldSizeSubmessage(2, d.EncodedSize())
	}
	for _, v := range g.Vars {
		total += fieldSizeSubmessage(3, v.EncodedSize())
	}
	for _, s := range g.Structs {
		total += fieldSizeSubmessage(4, s.EncodedSize())
	}
	for _, a := range g.Atts {
		total += fieldSizeSubmessage(5, a.EncodedSize())
	}
	for _, child := range g.Groups {
		total += fieldSizeSubmessage(6, child.EncodedSize())
	}
	for _, et := range g.EnumTypes {
		total += fieldSizeSubmessage(7, et.EncodedSize())
	}
	return total
}

// Reclaim reclaims every owned child leaves-first, in field order, before
// returning g to the pool (§4.4.3). Meta.Parent is a weak reference and is
// never reclaimed through.
func (g *Group) Reclaim() {
	for _, d := range g.Dims {
		d.Reclaim()
	}
	for _, v := range g.Vars {
		v.Reclaim()
	}
	for _, s := range g.Structs {
		s.Reclaim()
	}
	for _, a := range g.Atts {
		a.Reclaim()
	}
	for _, child := range g.Groups {
		child.Reclaim()
	}
	for _, et := range g.EnumTypes {
		et.Reclaim()
	}
	*g = Group{}
	groupPool.Put(g)
}
