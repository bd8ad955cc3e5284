package layout

// columnImpl is the frozen implementation of Column. Its Family
// back-reference is nil until familyImpl's builder patches it in — Go has no
// cyclic value type, so the parent is resolved in a second pass rather than
// woven into columnImpl at construction time.
type columnImpl struct {
	primaryName string
	aliases     []string
	description string
	id          int32
	schema      CellSchemaDesc
	family      *familyImpl
}

func (c *columnImpl) PrimaryName() string    { return c.primaryName }
func (c *columnImpl) Aliases() []string      { return append([]string(nil), c.aliases...) }
func (c *columnImpl) Names() []string        { return append([]string{c.primaryName}, c.aliases...) }
func (c *columnImpl) Description() string    { return c.description }
func (c *columnImpl) ID() int32              { return c.id }
func (c *columnImpl) Schema() CellSchemaDesc { return c.schema }
func (c *columnImpl) Family() Family         { return c.family }

// familyImpl is the frozen implementation of Family.
type familyImpl struct {
	primaryName   string
	aliases       []string
	description   string
	id            int32
	isMap         bool
	mapSchema     CellSchemaDesc
	columns       []*columnImpl
	nameToColumn  map[string]*columnImpl
	localityGroup *localityGroupImpl
}

func (f *familyImpl) PrimaryName() string { return f.primaryName }
func (f *familyImpl) Aliases() []string   { return append([]string(nil), f.aliases...) }
func (f *familyImpl) Names() []string     { return append([]string{f.primaryName}, f.aliases...) }
func (f *familyImpl) Description() string { return f.description }
func (f *familyImpl) ID() int32           { return f.id }
func (f *familyImpl) IsMapType() bool     { return f.isMap }

func (f *familyImpl) MapSchema() CellSchemaDesc {
	if !f.isMap {
		panic("layout: MapSchema called on a group-type family")
	}
	return f.mapSchema
}

func (f *familyImpl) Columns() []Column {
	if f.isMap {
		panic("layout: Columns called on a map-type family")
	}
	cols := make([]Column, len(f.columns))
	for i, c := range f.columns {
		cols[i] = c
	}
	return cols
}

func (f *familyImpl) ColumnByName(name string) (Column, bool) {
	c, ok := f.nameToColumn[name]
	if !ok {
		return nil, false
	}
	return c, true
}

func (f *familyImpl) LocalityGroup() LocalityGroup { return f.localityGroup }

// localityGroupImpl is the frozen implementation of LocalityGroup.
type localityGroupImpl struct {
	primaryName  string
	aliases      []string
	description  string
	id           int32
	inMemory     bool
	ttlSeconds   int32
	maxVersions  int32
	compression  CompressionType
	families     []*familyImpl
	nameToFamily map[string]*familyImpl
	table        *tableLayoutImpl
}

func (g *localityGroupImpl) PrimaryName() string         { return g.primaryName }
func (g *localityGroupImpl) Aliases() []string           { return append([]string(nil), g.aliases...) }
func (g *localityGroupImpl) Names() []string             { return append([]string{g.primaryName}, g.aliases...) }
func (g *localityGroupImpl) Description() string         { return g.description }
func (g *localityGroupImpl) ID() int32                   { return g.id }
func (g *localityGroupImpl) InMemory() bool              { return g.inMemory }
func (g *localityGroupImpl) TTLSeconds() int32           { return g.ttlSeconds }
func (g *localityGroupImpl) MaxVersions() int32          { return g.maxVersions }
func (g *localityGroupImpl) Compression() CompressionType { return g.compression }
func (g *localityGroupImpl) Table() TableLayout          { return g.table }

func (g *localityGroupImpl) Families() []Family {
	fams := make([]Family, len(g.families))
	for i, f := range g.families {
		fams[i] = f
	}
	return fams
}

func (g *localityGroupImpl) FamilyByName(name string) (Family, bool) {
	f, ok := g.nameToFamily[name]
	if !ok {
		return nil, false
	}
	return f, true
}

// tableLayoutImpl is the frozen implementation of TableLayout: the object
// Build returns.
type tableLayoutImpl struct {
	name                string
	description         string
	keysFormat          KeyFormat
	layoutID            string
	localityGroups      []*localityGroupImpl
	localityGroupByName map[string]*localityGroupImpl
	familyByName        map[string]*familyImpl
	columnNames         []ColumnName
	resolver            SchemaResolver
}

func (t *tableLayoutImpl) Name() string        { return t.name }
func (t *tableLayoutImpl) Description() string { return t.description }
func (t *tableLayoutImpl) KeysFormat() KeyFormat { return t.keysFormat }
func (t *tableLayoutImpl) LayoutID() string    { return t.layoutID }

func (t *tableLayoutImpl) LocalityGroups() []LocalityGroup {
	groups := make([]LocalityGroup, len(t.localityGroups))
	for i, g := range t.localityGroups {
		groups[i] = g
	}
	return groups
}

func (t *tableLayoutImpl) LocalityGroupByName(name string) (LocalityGroup, bool) {
	g, ok := t.localityGroupByName[name]
	if !ok {
		return nil, false
	}
	return g, true
}

func (t *tableLayoutImpl) FamilyByName(name string) (Family, bool) {
	f, ok := t.familyByName[name]
	if !ok {
		return nil, false
	}
	return f, true
}

func (t *tableLayoutImpl) ColumnNames() []ColumnName {
	return append([]ColumnName(nil), t.columnNames...)
}
