package layout

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"
)

// Descriptor reconstructs the fully-resolved TableLayoutDesc this layout was
// built from: every ID filled in, every RenamedFrom cleared (renames are
// consumed during construction; the frozen layout has no memory of what a
// column used to be called).
func (t *tableLayoutImpl) Descriptor() *TableLayoutDesc {
	desc := &TableLayoutDesc{
		Name:        t.name,
		Description: t.description,
		KeysFormat:  t.keysFormat,
		LayoutID:    t.layoutID,
	}
	for _, lg := range t.localityGroups {
		lgDesc := LocalityGroupDesc{
			Name:        lg.primaryName,
			Aliases:     append([]string(nil), lg.aliases...),
			Description: lg.description,
			InMemory:    lg.inMemory,
			TTLSeconds:  lg.ttlSeconds,
			MaxVersions: lg.maxVersions,
			Compression: lg.compression,
			ID:          lg.id,
		}
		for _, fam := range lg.families {
			famDesc := FamilyDesc{
				Name:        fam.primaryName,
				Aliases:     append([]string(nil), fam.aliases...),
				Description: fam.description,
				ID:          fam.id,
			}
			if fam.isMap {
				famDesc.MapSchema = fam.mapSchema.Clone()
			} else {
				famDesc.Columns = make([]ColumnDesc, len(fam.columns))
				for i, col := range fam.columns {
					famDesc.Columns[i] = ColumnDesc{
						Name:         col.primaryName,
						Aliases:      append([]string(nil), col.aliases...),
						Description:  col.description,
						ID:           col.id,
						ColumnSchema: col.schema,
					}
				}
			}
			lgDesc.Families = append(lgDesc.Families, famDesc)
		}
		desc.LocalityGroups = append(desc.LocalityGroups, lgDesc)
	}
	return desc
}

// canonicalJSON returns the layout's descriptor form marshalled to JSON.
// Field order in the marshalled object follows struct declaration order,
// which is fixed, so this is stable across calls for an equal layout.
func (t *tableLayoutImpl) canonicalJSON() []byte {
	buf, err := json.Marshal(t.Descriptor())
	if err != nil {
		// Descriptor() only ever contains JSON-safe scalars, slices, and
		// structs built by this package; a marshal failure here would mean
		// a real bug in this type, not a data problem worth recovering from.
		panic(err)
	}
	return buf
}

// Hash implements C8's structural hash: xxhash-64 over the canonical JSON
// encoding of the descriptor.
func (t *tableLayoutImpl) Hash() uint64 {
	return xxhash.Sum64(t.canonicalJSON())
}

// Equals implements C8's structural equality: a byte-for-byte compare of
// the two layouts' canonical JSON.
func (t *tableLayoutImpl) Equals(other TableLayout) bool {
	o, ok := other.(interface{ canonicalJSON() []byte })
	if !ok {
		return t.String() == other.String()
	}
	return string(t.canonicalJSON()) == string(o.canonicalJSON())
}

// String implements C8's toString: the descriptor serialised to JSON.
func (t *tableLayoutImpl) String() string {
	return string(t.canonicalJSON())
}
