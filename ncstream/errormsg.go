package ncstream

import (
	"sync"

	"github.com/kungfusheep/ncstream/wire"
)

// ErrorMsg carries a server-supplied diagnostic string delivered inside an
// error-magic frame (§3.1, §4.5). Named ErrorMsg rather than Error to stay
// clear of the builtin error interface.
type ErrorMsg struct {
	Message string

	Meta Meta
}

var errorMsgPool = sync.Pool{New: func() any { return &ErrorMsg{} }}

func NewErrorMsg() *ErrorMsg { return errorMsgPool.Get().(*ErrorMsg) }

func WriteErrorMsg(c *wire.Cursor, e *ErrorMsg) error {
	return writeStringField(c, 1, e.Message)
}

func ReadErrorMsg(c *wire.Cursor) (*ErrorMsg, error) {
	e := NewErrorMsg()
	for !c.AtEnd() {
		wt, fieldNo, err := c.ReadTag()
		if err != nil {
			e.Reclaim()
			return nil, err
		}
		switch fieldNo {
		case 1:
			v, err := readStringValue(c, wt)
			if err != nil {
				e.Reclaim()
				return nil, err
			}
			e.Message = v
		default:
			if err := c.SkipField(wt); err != nil {
				e.Reclaim()
				return nil, err
			}
		}
	}
	return e, nil
}

func (e *ErrorMsg) EncodedSize() int {
	return fieldSizeString(1, e.Message)
}

func (e *ErrorMsg) Reclaim() {
	*e = ErrorMsg{}
	errorMsgPool.Put(e)
}
