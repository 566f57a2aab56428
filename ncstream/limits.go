package ncstream

import "github.com/kungfusheep/ncstream/wire"

// Limits bounds pathological input during decode (max submessage nesting
// depth, max bytes/string field length). The core is otherwise
// config-free (§6.4); this is the one configurable surface, matching the
// teacher's DecodeLimits/NewDecoderWithLimits pattern.
type Limits = wire.Limits

// DefaultLimits provides sensible defaults for decoding untrusted input.
var DefaultLimits = wire.DefaultLimits

// NewCursorWithLimits builds a read Cursor over buf bounded by limits,
// the entry point an embedder reaches for instead of wire.NewCursor
// directly when decoding untrusted input.
func NewCursorWithLimits(buf []byte, limits Limits) *wire.Cursor {
	return wire.NewCursorWithLimits(wire.Read, buf, limits)
}
