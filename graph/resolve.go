package graph

import (
	"github.com/kungfusheep/ncstream/ncerr"
	"github.com/kungfusheep/ncstream/ncstream"
)

// MapDimensions implements §4.9 steps 1–2: build the declaration pool
// from every isdecl Dimension in set, then resolve every reference
// Dimension against it by pathname, kind, and effective size. A
// reference carrying only a name (no kind indicator set) takes the kind
// and size of the declaration it names. A pathname match with a
// mismatched kind or size, or with a declaration of KindUnknown, is
// InvalidCoords, not a fall-through to the next candidate; an unresolved
// reference after the scan is also InvalidCoords.
func MapDimensions(set NodeSet) error {
	var decls []*ncstream.Dimension
	for _, n := range set {
		d, ok := n.(*ncstream.Dimension)
		if !ok {
			continue
		}
		if ncstream.MetaOf(d).Flags.IsDecl {
			decls = append(decls, d)
		}
	}
	for _, n := range set {
		r, ok := n.(*ncstream.Dimension)
		if !ok || ncstream.MetaOf(r).Flags.IsDecl {
			continue
		}
		rm := ncstream.MetaOf(r)
		bare := !(r.IsUnlimited.Defined && r.IsUnlimited.Value) && !(r.IsVlen.Defined && r.IsVlen.Value) &&
			!(r.IsPrivate.Defined && r.IsPrivate.Value) && !(r.Length.Defined && r.Length.Value != 0)
		for _, d := range decls {
			if d == r {
				continue
			}
			dm := ncstream.MetaOf(d)
			if !rm.Pathname.Defined || !dm.Pathname.Defined || rm.Pathname.Value != dm.Pathname.Value {
				continue
			}
			kind := Classify(d)
			if kind == KindUnknown || (!bare && (kind != Classify(r) || EffectiveSize(d) != EffectiveSize(r))) {
				return ncerr.ErrInvalidCoords
			}
			rm.DimDecl = d
			break
		}
		if rm.DimDecl == nil {
			return ncerr.ErrInvalidCoords
		}
	}
	return nil
}

// DerefDimensions implements §4.9 steps 3–4: rewrite every Variable and
// Structure Shape element to point directly at its resolved declaration,
// then prune the now-orphaned reference nodes from set. The declaration
// pool itself is untouched.
func DerefDimensions(set *NodeSet) {
	orphans := make(map[ncstream.Node]bool)
	rewrite := func(shape []*ncstream.Dimension) []*ncstream.Dimension {
		out := make([]*ncstream.Dimension, len(shape))
		for i, d := range shape {
			if decl := ncstream.MetaOf(d).DimDecl; decl != nil {
				orphans[d] = true
				out[i] = decl
			} else {
				out[i] = d
			}
		}
		return out
	}
	for _, n := range *set {
		switch v := n.(type) {
		case *ncstream.Variable:
			v.Shape = rewrite(v.Shape)
		case *ncstream.Structure:
			v.Shape = rewrite(v.Shape)
		}
	}
	if len(orphans) == 0 {
		return
	}
	pruned := (*set)[:0:0]
	for _, n := range *set {
		if orphans[n] {
			continue
		}
		pruned = append(pruned, n)
	}
	*set = pruned
}
