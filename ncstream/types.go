// Package ncstream implements the ncStream (CDM-Remote) message schema
// runtime: per-message Write/Read/Reclaim/Size (§4.4) for every message
// type in §3.1, generalized from the teacher's schema-driven Walk
// dispatch (walker.go) into the static, per-type dispatch the spec's
// Design Notes call for ("the (field_no, wiretype) -> action table
// becomes a match on field_no inside the per-message reader").
package ncstream

// DataType enumerates the scalar and container element types carried by
// Attribute/Variable/Structure/Data messages (§3.1). Ordinals are part of
// the wire contract and MUST NOT be renumbered.
type DataType uint32

const (
	Char DataType = iota
	Byte
	Short
	Int
	Int64
	Float
	Double
	String
	Structure_
	Sequence
	Enum1
	Enum2
	Enum4
	Opaque
	Ubyte
	Ushort
	Uint
	Uint64
)

// Compress enumerates the payload compression recorded on a Data message.
// The core only records this metadata; it never decompresses a payload
// itself (§1 Non-goals).
type Compress uint32

const (
	CompressNone Compress = iota
	CompressDeflate
)
