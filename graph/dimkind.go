package graph

import (
	"github.com/kungfusheep/ncstream/log"
	"github.com/kungfusheep/ncstream/ncstream"
)

// Kind is the closed set of categorical dimension kinds §4.8 classifies
// a Dimension into.
type Kind int

const (
	KindUnknown Kind = iota
	KindFixed
	KindUnlimited
	KindVlen
	KindPrivate
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindUnlimited:
		return "unlimited"
	case KindVlen:
		return "vlen"
	case KindPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// Sentinel effective sizes for the non-fixed dimension kinds (§4.8). A
// real fixed length is always >= 0, so these never collide with one.
const (
	SizeUnlimited int64 = -2
	SizeVlen      int64 = -3
	SizeUnsized   int64 = -1
)

// Classify implements the dimension-kind decision in §4.8: more than one
// truthy indicator is malformed and logged, collapsing to KindUnknown.
func Classify(d *ncstream.Dimension) Kind {
	truthy := 0
	unlimited := d.IsUnlimited.Defined && d.IsUnlimited.Value
	vlen := d.IsVlen.Defined && d.IsVlen.Value
	private := d.IsPrivate.Defined && d.IsPrivate.Value
	fixed := d.Length.Defined && d.Length.Value != 0
	for _, t := range []bool{unlimited, vlen, private, fixed} {
		if t {
			truthy++
		}
	}
	if truthy > 1 {
		name := "?"
		if d.Meta.Pathname.Defined {
			name = d.Meta.Pathname.Value
		}
		log.Warn("malformed dimension: more than one kind indicator set", "pathname", name)
		return KindUnknown
	}
	switch {
	case unlimited:
		return KindUnlimited
	case vlen:
		return KindVlen
	case private:
		return KindPrivate
	case fixed:
		return KindFixed
	default:
		return KindUnknown
	}
}

// EffectiveSize returns a Dimension's size per the table in §4.8.
func EffectiveSize(d *ncstream.Dimension) int64 {
	switch Classify(d) {
	case KindUnlimited:
		return SizeUnlimited
	case KindVlen:
		return SizeVlen
	case KindFixed:
		return int64(d.Length.Value)
	default:
		return SizeUnsized
	}
}
