package layout

// LocalityGroup is a frozen storage-tier grouping: every Family inside
// shares retention, compression, versioning, and memory-vs-disk placement.
type LocalityGroup interface {
	// PrimaryName returns the locality group's canonical name.
	PrimaryName() string
	// Aliases returns the locality group's alternate names.
	Aliases() []string
	// Names returns PrimaryName followed by every alias.
	Names() []string
	// Description returns the locality group's free-text description.
	Description() string
	// ID returns the locality group's stable short integer identifier.
	ID() int32
	// InMemory reports whether this locality group is retained in memory.
	InMemory() bool
	// TTLSeconds returns the maximum age of a cell before it is dropped.
	TTLSeconds() int32
	// MaxVersions returns the maximum number of versions retained per cell.
	MaxVersions() int32
	// Compression returns the block compression codec for this locality group.
	Compression() CompressionType
	// Families returns this locality group's families in declaration order.
	Families() []Family
	// FamilyByName looks up a family by primary name or alias, scoped to
	// this locality group.
	FamilyByName(name string) (Family, bool)
	// Table returns the enclosing TableLayout. Resolved as a back-reference
	// after the parent is finalised, never as an owning pointer.
	Table() TableLayout
}
