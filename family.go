package layout

// Family is a frozen, named column grouping: either group-type (a fixed set
// of named Columns) or map-type (arbitrary free-form qualifiers sharing one
// value schema). Kind is immutable once a family exists in a prior layout.
type Family interface {
	// PrimaryName returns the family's canonical name.
	PrimaryName() string
	// Aliases returns the family's alternate names.
	Aliases() []string
	// Names returns PrimaryName followed by every alias.
	Names() []string
	// Description returns the family's free-text description.
	Description() string
	// ID returns the family's stable short integer identifier, scoped to
	// its enclosing locality group.
	ID() int32
	// IsMapType reports whether this is a map-type family.
	IsMapType() bool
	// MapSchema returns the map-type family's shared value schema. Panics
	// if IsMapType is false.
	MapSchema() CellSchemaDesc
	// Columns returns a group-type family's columns in declaration order.
	// Panics if IsMapType is true.
	Columns() []Column
	// ColumnByName looks up a group-type family's column by primary name
	// or alias.
	ColumnByName(name string) (Column, bool)
	// LocalityGroup returns the enclosing LocalityGroup. Resolved as a
	// back-reference after the parent is finalised, never as an owning
	// pointer.
	LocalityGroup() LocalityGroup
}
