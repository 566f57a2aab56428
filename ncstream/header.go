package ncstream

import (
	"sync"

	"github.com/kungfusheep/ncstream/ncerr"
	"github.com/kungfusheep/ncstream/wire"
)

// Header is the top-level message inside a header-magic frame (§4.5): a
// dataset's optional identity fields plus its required root Group (§3.1).
type Header struct {
	Location Optional[string]
	Title    Optional[string]
	ID       Optional[string]
	Root     *Group
	Version  Optional[uint32]

	Meta Meta
}

var headerPool = sync.Pool{New: func() any { return &Header{} }}

func NewHeader() *Header { return headerPool.Get().(*Header) }

func WriteHeader(c *wire.Cursor, h *Header) error {
	if h.Location.Defined {
		if err := writeStringField(c, 1, h.Location.Value); err != nil {
			return err
		}
	}
	if h.Title.Defined {
		if err := writeStringField(c, 2, h.Title.Value); err != nil {
			return err
		}
	}
	if h.ID.Defined {
		if err := writeStringField(c, 3, h.ID.Value); err != nil {
			return err
		}
	}
	if err := writeSubmessage(c, 4, h.Root.EncodedSize(), func(c *wire.Cursor) error {
		return WriteGroup(c, h.Root)
	}); err != nil {
		return err
	}
	if h.Version.Defined {
		if err := writeVarintField(c, 5, uint64(h.Version.Value)); err != nil {
			return err
		}
	}
	return nil
}

// ReadHeader decodes a Header. Root is required (§3.1); its absence is
// reported via ncerr.NewMissingField.
func ReadHeader(c *wire.Cursor) (*Header, error) {
	h := NewHeader()
	rootSeen := false
	for !c.AtEnd() {
		wt, fieldNo, err := c.ReadTag()
		if err != nil {
			h.Reclaim()
			return nil, err
		}
		switch fieldNo {
		case 1:
			v, err := readStringValue(c, wt)
			if err != nil {
				h.Reclaim()
				return nil, err
			}
			h.Location = Some(v)
		case 2:
			v, err := readStringValue(c, wt)
			if err != nil {
				h.Reclaim()
				return nil, err
			}
			h.Title = Some(v)
		case 3:
			v, err := readStringValue(c, wt)
			if err != nil {
				h.Reclaim()
				return nil, err
			}
			h.ID = Some(v)
		case 4:
			var root *Group
			if err := readSubmessage(c, wt, func(c *wire.Cursor) error {
				var rerr error
				root, rerr = ReadGroup(c)
				return rerr
			}); err != nil {
				h.Reclaim()
				return nil, err
			}
			h.Root = root
			rootSeen = true
		case 5:
			v, err := readVarintValue(c, wt)
			if err != nil {
				h.Reclaim()
				return nil, err
			}
			h.Version = Some(uint32(v))
		default:
			if err := c.SkipField(wt); err != nil {
				h.Reclaim()
				return nil, err
			}
		}
	}
	if !rootSeen {
		h.Reclaim()
		return nil, ncerr.NewMissingField("Header.root")
	}
	return h, nil
}

func (h *Header) EncodedSize() int {
	total := 0
	if h.Location.Defined {
		total += fieldSizeString(1, h.Location.Value)
	}
	if h.Title.Defined {
		total += fieldSizeString(2, h.Title.Value)
	}
	if h.ID.Defined {
		total += fieldSizeString(3, h.ID.Value)
	}
	total += fieldSizeSubmessage(4, h.Root.EncodedSize())
	if h.Version.Defined {
		total += fieldSizeVarint(5, uint64(h.Version.Value))
	}
	return total
}

// Reclaim reclaims the owned root Group, leaves-first, before returning h
// to the pool (§4.4.3).
func (h *Header) Reclaim() {
	if h.Root != nil {
		h.Root.Reclaim()
	}
	*h = Header{}
	headerPool.Put(h)
}
