package layout

// TableLayout is the frozen, fully-resolved output of Build: every entity
// has a stable short integer ID, every name has been validated and checked
// for uniqueness, and every cell schema has been parsed. It is deeply
// immutable once returned — safe for concurrent readers across any number
// of goroutines with no synchronisation.
type TableLayout interface {
	// Name returns the table's name. Immutable across updates.
	Name() string
	// Description returns the table's free-text description.
	Description() string
	// KeysFormat returns the row-key encoding. Immutable across updates.
	KeysFormat() KeyFormat
	// LayoutID returns this layout's monotonically increasing layout ID.
	LayoutID() string
	// LocalityGroups returns this table's locality groups in declaration order.
	LocalityGroups() []LocalityGroup
	// LocalityGroupByName looks up a locality group by primary name or alias.
	LocalityGroupByName(name string) (LocalityGroup, bool)
	// FamilyByName looks up a family by primary name or alias across the
	// whole table (family names and aliases are unique table-wide, not
	// merely within their locality group).
	FamilyByName(name string) (Family, bool)
	// ColumnNames returns every primary ColumnName in the table: one
	// unqualified ColumnName per map-type family, one qualified ColumnName
	// per column of every group-type family.
	ColumnNames() []ColumnName

	// GetCellSchema returns the declared cell schema for name. If name's
	// family is map-type, the family's shared value schema is returned
	// regardless of qualifier. If name's family is group-type, a qualifier
	// is required — an unqualified name is an InvalidLayout with reason
	// InvalidParameter, not a NoSuchColumn — and must name an existing column.
	GetCellSchema(name ColumnName) (CellSchemaDesc, error)
	// GetSchema resolves and returns the ResolvedSchema for name, via the
	// SchemaResolver this layout was built with. Returns (nil, nil) for a
	// COUNTER cell or an unresolved CLASS cell.
	GetSchema(name ColumnName) (ResolvedSchema, error)
	// GetCellFormat returns the storage variant (HASH, UID, or FINAL) for name.
	GetCellFormat(name ColumnName) (SchemaStorage, error)
	// Exists reports whether name resolves to a real column or family.
	// An unknown family reports false. A map-type family reports true for
	// any qualifier. A group-type family reports true when unqualified, or
	// when qualified with an existing column's name or alias.
	Exists(name ColumnName) bool

	// Descriptor returns a deep copy of the fully-resolved descriptor this
	// layout was built from: every ID filled in, every RenamedFrom cleared.
	Descriptor() *TableLayoutDesc
	// Hash returns a structural hash of this layout's descriptor form.
	Hash() uint64
	// Equals reports whether two layouts have equal descriptor forms.
	Equals(other TableLayout) bool
	// String returns the descriptor serialised to JSON.
	String() string
}
