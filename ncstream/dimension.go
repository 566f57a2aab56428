package ncstream

import (
	"sync"

	"github.com/kungfusheep/ncstream/wire"
)

// Dimension is either a declaration (appears directly in a Group's Dims)
// or a reference (appears inside a Variable's or Structure's Shape). All
// four scalar fields are optional; a missing boolean defaults to false
// and a missing Length defaults to 0 (§3.1).
type Dimension struct {
	Name        Optional[string]
	Length      Optional[uint64]
	IsUnlimited Optional[bool]
	IsVlen      Optional[bool]
	IsPrivate   Optional[bool]

	Meta Meta
}

var dimensionPool = sync.Pool{New: func() any { return &Dimension{} }}

// NewDimension obtains a zeroed Dimension from the pool.
func NewDimension() *Dimension { return dimensionPool.Get().(*Dimension) }

// WriteDimension emits only the optional fields that are Defined (§4.4.1).
func WriteDimension(c *wire.Cursor, d *Dimension) error {
	if d.Name.Defined {
		if err := writeStringField(c, 1, d.Name.Value); err != nil {
			return err
		}
	}
	if d.Length.Defined {
		if err := writeVarintField(c, 2, d.Length.Value); err != nil {
			return err
		}
	}
	if d.IsUnlimited.Defined {
		if err := writeBoolField(c, 3, d.IsUnlimited.Value); err != nil {
			return err
		}
	}
	if d.IsVlen.Defined {
		if err := writeBoolField(c, 4, d.IsVlen.Value); err != nil {
			return err
		}
	}
	if d.IsPrivate.Defined {
		if err := writeBoolField(c, 5, d.IsPrivate.Value); err != nil {
			return err
		}
	}
	return nil
}

// ReadDimension decodes a Dimension, then applies default fill-in (§8.4):
// any of the four optional fields absent from the wire is set Defined
// with its documented default.
func ReadDimension(c *wire.Cursor) (*Dimension, error) {
	d := NewDimension()
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
			d.Name = Some(v)
		case 2:
			v, err := readVarintValue(c, wt)
			if err != nil {
				d.Reclaim()
				return nil, err
			}
			d.Length = Some(v)
		case 3:
			v, err := readBoolValue(c, wt)
			if err != nil {
				d.Reclaim()
				return nil, err
			}
			d.IsUnlimited = Some(v)
		case 4:
			v, err := readBoolValue(c, wt)
			if err != nil {
				d.Reclaim()
				return nil, err
			}
			d.IsVlen = Some(v)
		case 5:
			v, err := readBoolValue(c, wt)
			if err != nil {
				d.Reclaim()
				return nil, err
			}
			d.IsPrivate = Some(v)
		default:
			if err := c.SkipField(wt); err != nil {
				d.Reclaim()
				return nil, err
			}
		}
	}
	if !d.Length.Defined {
		d.Length = Some[uint64](0)
	}
	if !d.IsUnlimited.Defined {
		d.IsUnlimited = Some(false)
	}
	if !d.IsVlen.Defined {
		d.IsVlen = Some(false)
	}
	if !d.IsPrivate.Defined {
		d.IsPrivate = Some(false)
	}
	return d, nil
}

// EncodedSize returns the exact encoded length of d (§4.4.4).
func (d *Dimension) EncodedSize() int {
	total := 0
	if d.Name.Defined {
		total += fieldSizeString(1, d.Name.Value)
	}
	if d.Length.Defined {
		total += fieldSizeVarint(2, d.Length.Value)
	}
	if d.IsUnlimited.Defined {
		total += fieldSizeBool(3)
	}
	if d.IsVlen.Defined {
		total += fieldSizeBool(4)
	}
	if d.IsPrivate.Defined {
		total += fieldSizeBool(5)
	}
	return total
}

// Reclaim returns d to the pool.
func (d *Dimension) Reclaim() {
	*d = Dimension{}
	dimensionPool.Put(d)
}
