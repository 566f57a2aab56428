package graph

import (
	"strings"

	"github.com/kungfusheep/ncstream/ncstream"
)

// ComputePathnames assigns Meta.Pathname for every node whose sort
// participates in dimension resolution and diagnostics: Dimension,
// Variable, Structure, EnumType, Group (§4.7). Other sorts are left with
// an undefined Pathname.
func ComputePathnames(set NodeSet) {
	for _, n := range set {
		m := ncstream.MetaOf(n)
		switch m.Sort {
		case ncstream.SortDimension, ncstream.SortVariable, ncstream.SortStructure,
			ncstream.SortEnumType, ncstream.SortGroup:
			m.Pathname = pathnameFor(n)
		}
	}
}

// pathnameFor walks n's Parent chain collecting enclosing Group names,
// stopping before any isroot Group, then joins the reversed ancestor
// names with n's own effective name. A node whose own name is undefined
// (only possible for a Dimension reference with no name field) yields an
// undefined pathname; MapDimensions matches no declaration to it and
// reports it as unresolved.
func pathnameFor(n ncstream.Node) ncstream.Optional[string] {
	own, ok := effectiveName(n)
	if !ok {
		return ncstream.None[string]()
	}
	var ancestors []string
	parent := ncstream.MetaOf(n).Parent
	for parent != nil {
		pm := ncstream.MetaOf(parent)
		if pm.Flags.IsRoot {
			break
		}
		if name, ok := effectiveName(parent); ok && name != "" {
			ancestors = append(ancestors, name)
		}
		parent = pm.Parent
	}
	for i, j := 0, len(ancestors)-1; i < j; i, j = i+1, j-1 {
		ancestors[i], ancestors[j] = ancestors[j], ancestors[i]
	}
	parts := ancestors
	if own != "" {
		parts = append(parts, own)
	}
	return ncstream.Some(strings.Join(parts, "."))
}

// effectiveName implements the per-sort name source table in §4.7.
func effectiveName(n ncstream.Node) (string, bool) {
	switch v := n.(type) {
	case *ncstream.Attribute:
		return v.Name, true
	case *ncstream.Dimension:
		if v.Name.Defined {
			return v.Name.Value, true
		}
		return "", false
	case *ncstream.Variable:
		return v.Name, true
	case *ncstream.Structure:
		return v.Name, true
	case *ncstream.EnumTypedef:
		return v.Name, true
	case *ncstream.EnumType:
		return v.Value, true
	case *ncstream.Group:
		if ncstream.MetaOf(v).Flags.IsRoot {
			return "", false
		}
		return v.Name, true
	default:
		return "", false
	}
}
