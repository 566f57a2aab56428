package ncstream

import (
	"sync"

	"github.com/kungfusheep/ncstream/wire"
)

// Attribute carries one typed value (a binary blob in Data) or a sequence
// of strings (SData). The two are mutually exclusive at the semantic
// level but both MAY appear on the wire; the decoder preserves whichever
// is present (§3.1).
type Attribute struct {
	Name  string
	Type  DataType
	Len   uint32
	Data  Optional[[]byte]
	SData []string

	Meta Meta
}

var attributePool = sync.Pool{New: func() any { return &Attribute{} }}

// NewAttribute obtains a zeroed Attribute from the pool — the allocation
// side of the teacher's Buffer pooling pattern (buffer.go's bufpool),
// applied here as the idiomatic Go stand-in for the source's
// M_reclaim/ast_alloc pairing (spec Design Notes).
func NewAttribute() *Attribute { return attributePool.Get().(*Attribute) }

// WriteAttribute emits attr's fields in ascending field-number order
// (§4.4.1).
func WriteAttribute(c *wire.Cursor, attr *Attribute) error {
	if err := writeStringField(c, 1, attr.Name); err != nil {
		return err
	}
	if err := writeEnumField(c, 2, uint64(attr.Type)); err != nil {
		return err
	}
	if err := writeVarintField(c, 3, uint64(attr.Len)); err != nil {
		return err
	}
	if attr.Data.Defined {
		if err := writeBytesField(c, 4, attr.Data.Value); err != nil {
			return err
		}
	}
	for _, s := range attr.SData {
		if err := writeStringField(c, 5, s); err != nil {
			return err
		}
	}
	return nil
}

// ReadAttribute decodes an Attribute at the cursor, skipping any unknown
// field numbers (§4.4.2). On any propagated failure the partially-built
// Attribute is reclaimed before returning, per §4.4.2's no-leak
// requirement.
func ReadAttribute(c *wire.Cursor) (*Attribute, error) {
	a := NewAttribute()
	for !c.AtEnd() {
		wt, fieldNo, err := c.ReadTag()
		if err != nil {
			a.Reclaim()
			return nil, err
		}
		switch fieldNo {
		case 1:
			if a.Name, err = readStringValue(c, wt); err != nil {
				a.Reclaim()
				return nil, err
			}
		case 2:
			v, err := readVarintValue(c, wt)
			if err != nil {
				a.Reclaim()
				return nil, err
			}
			a.Type = DataType(v)
		case 3:
			v, err := readVarintValue(c, wt)
			if err != nil {
				a.Reclaim()
				return nil, err
			}
			a.Len = uint32(v)
		case 4:
			b, err := readBytesValue(c, wt)
			if err != nil {
				a.Reclaim()
				return nil, err
			}
			a.Data = Some(b)
		case 5:
			s, err := readStringValue(c, wt)
			if err != nil {
				a.Reclaim()
				return nil, err
			}
			a.SData = append(a.SData, s)
		default:
			if err := c.SkipField(wt); err != nil {
				a.Reclaim()
				return nil, err
			}
		}
	}
	return a, nil
}

// EncodedSize returns the exact encoded length of attr without writing (§4.4.4).
func (attr *Attribute) EncodedSize() int {
	total := fieldSizeString(1, attr.Name)
	total += fieldSizeVarint(2, uint64(attr.Type))
	total += fieldSizeVarint(3, uint64(attr.Len))
	if attr.Data.Defined {
		total += fieldSizeBytes(4, attr.Data.Value)
	}
	for _, s := range attr.SData {
		total += fieldSizeString(5, s)
	}
	return total
}

// Reclaim releases attr's owned storage and returns it to the pool
// (§4.4.3). Leaves-first: nothing here owns submessages, so this is a
// single pool Put.
func (attr *Attribute) Reclaim() {
	*attr = Attribute{}
	attributePool.Put(attr)
}
