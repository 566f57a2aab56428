package ncstream

import (
	"sync"

	"github.com/kungfusheep/ncstream/wire"
)

// EnumType is a single name/ordinal pair within an EnumTypedef's Map
// (§3.1).
type EnumType struct {
	Code  uint32
	Value string

	Meta Meta
}

var enumTypePool = sync.Pool{New: func() any { return &EnumType{} }}

// NewEnumType obtains a zeroed EnumType from the pool.
func NewEnumType() *EnumType { return enumTypePool.Get().(*EnumType) }

func WriteEnumType(c *wire.Cursor, e *EnumType) error {
	if err := writeVarintField(c, 1, uint64(e.Code)); err != nil {
		return err
	}
	return writeStringField(c, 2, e.Value)
}

func ReadEnumType(c *wire.Cursor) (*EnumType, error) {
	e := NewEnumType()
	for !c.AtEnd() {
		wt, fieldNo, err := c.ReadTag()
		if err != nil {
			e.Reclaim()
			return nil, err
		}
		switch fieldNo {
		case 1:
			v, err := readVarintValue(c, wt)
			if err != nil {
				e.Reclaim()
				return nil, err
			}
			e.Code = uint32(v)
		case 2:
			v, err := readStringValue(c, wt)
			if err != nil {
				e.Reclaim()
				return nil, err
			}
			e.Value = v
		default:
			if err := c.SkipField(wt); err != nil {
				e.Reclaim()
				return nil, err
			}
		}
	}
	return e, nil
}

func (e *EnumType) EncodedSize() int {
	return fieldSizeVarint(1, uint64(e.Code)) + fieldSizeString(2, e.Value)
}

func (e *EnumType) Reclaim() {
	*e = EnumType{}
	enumTypePool.Put(e)
}

// EnumTypedef names a set of EnumType name/ordinal pairs (§3.1). The
// source iterates its map with a mismatched loop index ("for(j=...;
// i++)", Design Notes Open Question #3); WriteEnumTypedef and
// EncodedSize both use a single, correctly-scoped index so every
// EnumType is visited exactly once.
type EnumTypedef struct {
	Name string
	Map  []*EnumType

	Meta Meta
}

var enumTypedefPool = sync.Pool{New: func() any { return &EnumTypedef{} }}

func NewEnumTypedef() *EnumTypedef { return enumTypedefPool.Get().(*EnumTypedef) }

func WriteEnumTypedef(c *wire.Cursor, t *EnumTypedef) error {
	if err := writeStringField(c, 1, t.Name); err != nil {
		return err
	}
	for i := 0; i < len(t.Map); i++ {
		m := t.Map[i]
		if err := writeSubmessage(c, 2, m.EncodedSize(), func(c *wire.Cursor) error {
			return WriteEnumType(c, m)
		}); err != nil {
			return err
		}
	}
	return nil
}

func ReadEnumTypedef(c *wire.Cursor) (*EnumTypedef, error) {
	t := NewEnumTypedef()
	for !c.AtEnd() {
		wt, fieldNo, err := c.ReadTag()
		if err != nil {
			t.Reclaim()
			return nil, err
		}
		switch fieldNo {
		case 1:
			v, err := readStringValue(c, wt)
			if err != nil {
				t.Reclaim()
				return nil, err
			}
			t.Name = v
		case 2:
			var m *EnumType
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				m, rerr = ReadEnumType(c)
				return rerr
			}); err != nil {
				t.Reclaim()
				return nil, err
			}
			t.Map = append(t.Map, m)
		default:
			if err := c.SkipField(wt); err != nil {
				t.Reclaim()
				return nil, err
			}
		}
	}
	return t, nil
}

func (t *EnumTypedef) EncodedSize() int {
	total := fieldSizeString(1, t.Name)
	for i := 0; i < len(t.Map); i++ {
		total += fieldSizeSubmessage(2, t.Map[i].EncodedSize())
	}
	return total
}

// Reclaim reclaims every EnumType owned by t, leaves-first, then returns
// t to the pool (§4.4.3).
func (t *EnumTypedef) Reclaim() {
	for _, m := range t.Map {
		m.Reclaim()
	}
	*t = EnumTypedef{}
	enumTypedefPool.Put(t)
}
