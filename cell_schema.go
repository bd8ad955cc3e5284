package layout

// SchemaKind classifies a resolved schema's shape.
type SchemaKind int

const (
	// KindPrimitive is a bare Avro-style primitive (string, int, long, ...).
	KindPrimitive SchemaKind = iota
	// KindRecord is a named record with fields.
	KindRecord
	// KindEnum is a named enumeration of symbols.
	KindEnum
	// KindArray is a homogeneous array of some item schema.
	KindArray
	// KindMap is a string-keyed map of some value schema.
	KindMap
	// KindUnion is an ordered union of alternative schemas.
	KindUnion
	// KindFixed is a fixed-width byte sequence.
	KindFixed
)

// ResolvedSchema is the parsed, validated form of a CellSchemaDesc's INLINE
// literal or a located CLASS's derived schema. The parser/derivation logic
// itself is an external collaborator (SchemaResolver); ResolvedSchema is
// just the contract the query surface exposes to callers.
type ResolvedSchema interface {
	// Kind returns this schema's shape.
	Kind() SchemaKind
	// String returns the canonical textual form of this schema.
	String() string
}

// PrimitiveSchema is a resolved bare primitive type.
type PrimitiveSchema struct{ Name string }

// Kind returns KindPrimitive.
func (p PrimitiveSchema) Kind() SchemaKind { return KindPrimitive }

// String returns the primitive's type name.
func (p PrimitiveSchema) String() string { return p.Name }

// NamedSchema is a resolved record, enum, or fixed schema, all of which
// carry a name and their original literal for round-tripping.
type NamedSchema struct {
	SchemaKind SchemaKind
	Name       string
	Raw        string
}

// Kind returns this schema's shape.
func (n NamedSchema) Kind() SchemaKind { return n.SchemaKind }

// String returns the schema's original literal text.
func (n NamedSchema) String() string { return n.Raw }

// CompositeSchema is a resolved array, map, or union schema, none of which
// carry a name of their own.
type CompositeSchema struct {
	SchemaKind SchemaKind
	Raw        string
}

// Kind returns this schema's shape.
func (c CompositeSchema) Kind() SchemaKind { return c.SchemaKind }

// String returns the schema's original literal text.
func (c CompositeSchema) String() string { return c.Raw }
