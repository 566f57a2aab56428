package ncstream

// Sort is the closed set of message kinds a Node can carry (§3.2). It
// replaces the source's ast_sort enum.
type Sort int

const (
	SortAttribute Sort = iota
	SortDimension
	SortVariable
	SortStructure
	SortEnumTypedef
	SortEnumType
	SortGroup
	SortHeader
	SortData
	SortRange
	SortSection
	SortStructureData
	SortError
)

func (s Sort) String() string {
	switch s {
	case SortAttribute:
		return "Attribute"
	case SortDimension:
		return "Dimension"
	case SortVariable:
		return "Variable"
	case SortStructure:
		return "Structure"
	case SortEnumTypedef:
		return "EnumTypedef"
	case SortEnumType:
		return "EnumType"
	case SortGroup:
		return "Group"
	case SortHeader:
		return "Header"
	case SortData:
		return "Data"
	case SortRange:
		return "Range"
	case SortSection:
		return "Section"
	case SortStructureData:
		return "StructureData"
	case SortError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Flags holds the three boolean graph-annotation flags from §3.2.
type Flags struct {
	IsRoot  bool
	IsDecl  bool
	Visible bool
}

// Meta is the graph-node annotation block attached to every decoded
// message (§3.2). It is populated by the graph walker (§4.6) and
// refined by the pathname (§4.7) and dimension-resolution (§4.9) passes.
// Parent is a weak, lookup-only reference: Meta never owns the Group it
// points to (spec Design Notes, "Ownership of cyclic-looking graphs").
type Meta struct {
	UID      uint32
	Sort     Sort
	Parent   *Group
	Pathname Optional[string]
	Flags    Flags
	DimDecl  *Dimension
}

// Node is implemented by every message type so the graph walker, pathname
// pass, and dimension resolver can operate over a flat, heterogeneous node
// set without runtime reflection — the static-dispatch replacement for the
// source's ast_sort-keyed polymorphism (spec Design Notes).
type Node interface {
	meta() *Meta
}

func (m *Attribute) meta() *Meta     { return &m.Meta }
func (m *Dimension) meta() *Meta     { return &m.Meta }
func (m *Variable) meta() *Meta      { return &m.Meta }
func (m *Structure) meta() *Meta     { return &m.Meta }
func (m *EnumTypedef) meta() *Meta   { return &m.Meta }
func (m *EnumType) meta() *Meta      { return &m.Meta }
func (m *Group) meta() *Meta         { return &m.Meta }
func (m *Header) meta() *Meta        { return &m.Meta }
func (m *Data) meta() *Meta          { return &m.Meta }
func (m *Range) meta() *Meta         { return &m.Meta }
func (m *Section) meta() *Meta       { return &m.Meta }
func (m *StructureData) meta() *Meta { return &m.Meta }
func (m *ErrorMsg) meta() *Meta      { return &m.Meta }

// MetaOf exposes the annotation block for any Node — the package-external
// equivalent of the unexported meta() accessor, used by ncstream/graph.
func MetaOf(n Node) *Meta { return n.meta() }
