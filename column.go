package layout

// Column is a frozen, named cell within a group-type Family. Its ID is
// stable across updates once assigned: renaming a column preserves the ID,
// deleting and re-adding one does not.
type Column interface {
	// PrimaryName returns the column's canonical name.
	PrimaryName() string
	// Aliases returns the column's alternate names.
	Aliases() []string
	// Names returns PrimaryName followed by every alias.
	Names() []string
	// Description returns the column's free-text description.
	Description() string
	// ID returns the column's stable short integer identifier.
	ID() int32
	// Schema returns the column's declared cell schema.
	Schema() CellSchemaDesc
	// Family returns the enclosing Family. Resolved as a back-reference
	// after the parent is finalised, never as an owning pointer.
	Family() Family
}
