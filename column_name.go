package layout

// ColumnName is the pair (family, qualifier) naming a cell location within a
// table. A missing qualifier denotes the whole family, which is only a
// valid target for a map-type family or for coarse family-level lookups.
type ColumnName struct {
	family    string
	qualifier string
	qualified bool
}

// NewColumnName builds a family-qualified ColumnName.
func NewColumnName(family, qualifier string) ColumnName {
	return ColumnName{family: family, qualifier: qualifier, qualified: true}
}

// NewFamilyColumnName builds a ColumnName naming a whole family, with no qualifier.
func NewFamilyColumnName(family string) ColumnName {
	return ColumnName{family: family}
}

// Family returns the family half of this ColumnName.
func (c ColumnName) Family() string { return c.family }

// Qualifier returns the qualifier half of this ColumnName and whether one was set.
func (c ColumnName) Qualifier() (string, bool) { return c.qualifier, c.qualified }

// IsFullyQualified returns true iff this ColumnName carries a qualifier.
func (c ColumnName) IsFullyQualified() bool { return c.qualified }

// String renders this ColumnName as "family" or "family:qualifier".
func (c ColumnName) String() string {
	if !c.qualified {
		return c.family
	}
	return c.family + ":" + c.qualifier
}

// Equals reports whether two ColumnNames name the same location.
func (c ColumnName) Equals(other ColumnName) bool {
	return c.family == other.family && c.qualified == other.qualified && c.qualifier == other.qualifier
}
