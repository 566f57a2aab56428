package wire

import "github.com/kungfusheep/ncstream/ncerr"

// Limits bounds pathological input during decode: maximum submessage
// nesting depth and maximum length of any single length-prefixed
// bytes/string field. A zero value for either bound means unlimited,
// matching the teacher's DecodeLimits convention (glint.go: "0 = unlimited").
// Both violations are reported as ErrMalformed (§7 has no dedicated
// variant for resource limits; a pathologically deep or oversized field
// is a malformed message as far as a caller is concerned).
type Limits struct {
	MaxDepth         int
	MaxBytesFieldLen int
}

// DefaultLimits provides sensible defaults for decoding untrusted input.
var DefaultLimits = Limits{
	MaxDepth:         64,
	MaxBytesFieldLen: 100 * 1024 * 1024, // 100MB
}

func (l Limits) checkDepth(depth int) error {
	if l.MaxDepth > 0 && depth > l.MaxDepth {
		return ncerr.ErrMalformed
	}
	return nil
}

func (l Limits) checkBytesLen(n int) error {
	if l.MaxBytesFieldLen > 0 && n > l.MaxBytesFieldLen {
		return ncerr.ErrMalformed
	}
	return nil
}
