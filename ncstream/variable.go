package ncstream

import (
	"sync"

	"github.com/kungfusheep/ncstream/wire"
)

// Variable describes one array-valued field of a Group or Structure. Each
// Shape element may be a full inline Dimension declaration or a reference
// carrying only a name (§3.1) — dimension reference resolution (§4.9)
// tells the two apart after the graph walk.
type Variable struct {
	Name     string
	DataType DataType
	Shape    []*Dimension
	Atts     []*Attribute
	Unsigned Optional[bool]
	Data     Optional[[]byte]
	EnumType Optional[string]
	DimIndex []uint32

	Meta Meta
}

var variablePool = sync.Pool{New: func() any { return &Variable{} }}

func NewVariable() *Variable { return variablePool.Get().(*Variable) }

func WriteVariable(c *wire.Cursor, v *Variable) error {
	if err := writeStringField(c, 1, v.Name); err != nil {
		return err
	}
	if err := writeEnumField(c, 2, uint64(v.DataType)); err != nil {
		return err
	}
	for _, d := range v.Shape {
		if err := writeSubmessage(c, 3, d.EncodedSize(), func(c *wire.Cursor) error {
			return WriteDimension(c, d)
		}); err != nil {
			return err
		}
	}
	for _, a := range v.Atts {
		if err := writeSubmessage(c, 4, a.EncodedSize(), func(c *wire.Cursor) error {
			return WriteAttribute(c, a)
		}); err != nil {
			return err
		}
	}
	if v.Unsigned.Defined {
		if err := writeBoolField(c, 5, v.Unsigned.Value); err != nil {
			return err
		}
	}
	if v.Data.Defined {
		if err := writeBytesField(c, 6, v.Data.Value); err != nil {
			return err
		}
	}
	if v.EnumType.Defined {
		if err := writeStringField(c, 7, v.EnumType.Value); err != nil {
			return err
		}
	}
	for _, idx := range v.DimIndex {
		if err := writeVarintField(c, 8, uint64(idx)); err != nil {
			return err
		}
	}
	return nil
}

func ReadVariable(c *wire.Cursor) (*Variable, error) {
	v := NewVariable()
	for !c.AtEnd() {
		wt, fieldNo, err := c.ReadTag()
		if err != nil {
			v.Reclaim()
			return nil, err
		}
		switch fieldNo {
		case 1:
			s, err := readStringValue(c, wt)
			if err != nil {
				v.Reclaim()
				return nil, err
			}
			v.Name = s
		case 2:
			n, err := readVarintValue(c, wt)
			if err != nil {
				v.Reclaim()
				return nil, err
			}
			v.DataType = DataType(n)
		case 3:
			var d *Dimension
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				d, rerr = ReadDimension(c)
				return rerr
			}); err != nil {
				v.Reclaim()
				return nil, err
			}
			v.Shape = append(v.Shape, d)
		case 4:
			var a *Attribute
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				a, rerr = ReadAttribute(c)
				return rerr
			}); err != nil {
				v.Reclaim()
				return nil, err
			}
			v.Atts = append(v.Atts, a)
		case 5:
			b, err := readBoolValue(c, wt)
			if err != nil {
				v.Reclaim()
				return nil, err
			}
			v.Unsigned = Some(b)
		case 6:
			b, err := readBytesValue(c, wt)
			if err != nil {
				v.Reclaim()
				return nil, err
			}
			v.Data = Some(b)
		case 7:
			s, err := readStringValue(c, wt)
			if err != nil {
				v.Reclaim()
				return nil, err
			}
			v.EnumType = Some(s)
		case 8:
			n, err := readVarintValue(c, wt)
			if err != nil {
				v.Reclaim()
				return nil, err
			}
			v.DimIndex = append(v.DimIndex, uint32(n))
		default:
			if err := c.SkipField(wt); err != nil {
				v.Reclaim()
				return nil, err
			}
		}
	}
	return v, nil
}

func (v *Variable) EncodedSize() int {
	total := fieldSizeString(1, v.Name)
	total += fieldSizeVarint(2, uint64(v.DataType))
	for _, d := range v.Shape {
		total += fieldSizeSubmessage(3, d.EncodedSize())
	}
	for _, a := range v.Atts {
		total += fieldSizeSubmessage(4, a.EncodedSize())
	}
	if v.Unsigned.Defined {
		total += fieldSizeBool(5)
	}
	if v.Data.Defined {
		total += fieldSizeBytes(6, v.Data.Value)
	}
	if v.EnumType.Defined {
		total += fieldSizeString(7, v.EnumType.Value)
	}
	for _, idx := range v.DimIndex {
		total += fieldSizeVarint(8, uint64(idx))
	}
	return total
}

// Reclaim reclaims Shape and Atts leaves-first before returning v to the
// pool (§4.4.3).
func (v *Variable) Reclaim() {
	for _, d := range v.Shape {
		d.Reclaim()
	}
	for _, a := range v.Atts {
		a.Reclaim()
	}
	*v = Variable{}
	variablePool.Put(v)
}
