// Package graph implements the post-decode normalization pipeline: the
// pre-order graph walker that annotates every decoded message with a
// dense uid, sort tag, and parent link (§4.6), pathname computation
// (§4.7), dimension kind classification (§4.8), and dimension reference
// resolution (§4.9). None of this package decodes wire bytes; it operates
// purely on an already-decoded ncstream.Header tree, the way the
// teacher's walker.go operates purely on already-decoded glint values.
package graph

import "github.com/kungfusheep/ncstream/ncstream"

// NodeSet is the flat, pre-order-indexed collection every node in a
// decoded tree is annotated into (§3.2). Index order matches uid order
// until DerefDimensions prunes orphaned Dimension references.
type NodeSet []ncstream.Node

func indexOf(set NodeSet, n ncstream.Node) int {
	for i, x := range set {
		if x == n {
			return i
		}
	}
	return -1
}

// annotate implements the per-node step of the graph walk (§4.6): it is
// idempotent, zeros the node's annotation block, assigns a dense uid,
// records sort and parent, and appends the node to set.
func annotate(set *NodeSet, parent *ncstream.Group, n ncstream.Node, sort ncstream.Sort) {
	if indexOf(*set, n) >= 0 {
		return
	}
	m := ncstream.MetaOf(n)
	*m = ncstream.Meta{}
	m.UID = uint32(len(*set))
	m.Sort = sort
	m.Parent = parent
	if parent == nil && sort == ncstream.SortGroup {
		m.Flags.IsRoot = true
	}
	*set = append(*set, n)
}

// Walk performs the pre-order traversal described in §4.6, starting at h
// itself (sort Header, parent nil) and descending into h.Root.
func Walk(h *ncstream.Header) NodeSet {
	var set NodeSet
	annotate(&set, nil, h, ncstream.SortHeader)
	if h.Root != nil {
		walkGroup(&set, nil, h.Root)
	}
	return set
}

// walkGroup visits a Group's children in the field order §4.6 mandates:
// dims, vars, structs, atts, groups, enumTypes. Every dimension appearing
// directly in dims is flagged isdecl.
func walkGroup(set *NodeSet, parent *ncstream.Group, g *ncstream.Group) {
	annotate(set, parent, g, ncstream.SortGroup)
	for _, d := range g.Dims {
		annotate(set, g, d, ncstream.SortDimension)
		ncstream.MetaOf(d).Flags.IsDecl = true
	}
	for _, v := range g.Vars {
		walkVariable(set, g, v)
	}
	for _, s := range g.Structs {
		walkStructure(set, g, s)
	}
	for _, a := range g.Atts {
		annotate(set, g, a, ncstream.SortAttribute)
	}
	for _, child := range g.Groups {
		walkGroup(set, g, child)
	}
	for _, et := range g.EnumTypes {
		walkEnumTypedef(set, g, et)
	}
}

// walkVariable visits shape then atts (§4.6). Shape dimensions take the
// enclosing Group as their parent, not the Variable itself — Meta.Parent
// only ever points at a Group (§3.2).
func walkVariable(set *NodeSet, parent *ncstream.Group, v *ncstream.Variable) {
	annotate(set, parent, v, ncstream.SortVariable)
	for _, d := range v.Shape {
		annotate(set, parent, d, ncstream.SortDimension)
	}
	for _, a := range v.Atts {
		annotate(set, parent, a, ncstream.SortAttribute)
	}
}

// walkStructure visits shape, atts, vars, then nested structs (§4.6).
func walkStructure(set *NodeSet, parent *ncstream.Group, s *ncstream.Structure) {
	annotate(set, parent, s, ncstream.SortStructure)
	for _, d := range s.Shape {
		annotate(set, parent, d, ncstream.SortDimension)
	}
	for _, a := range s.Atts {
		annotate(set, parent, a, ncstream.SortAttribute)
	}
	for _, v := range s.Vars {
		walkVariable(set, parent, v)
	}
	for _, child := range s.Structs {
		walkStructure(set, parent, child)
	}
}

func walkEnumTypedef(set *NodeSet, parent *ncstream.Group, t *ncstream.EnumTypedef) {
	annotate(set, parent, t, ncstream.SortEnumTypedef)
	for _, e := range t.Map {
		annotate(set, parent, e, ncstream.SortEnumType)
	}
}
