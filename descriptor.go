package layout

import (
	"encoding/json"
	"fmt"
)

// KeyFormat selects how a logical row key maps to the underlying
// row-store key. Immutable across updates to a table.
type KeyFormat int

const (
	// KeyFormatUnspecified marks a descriptor that never set keysFormat.
	KeyFormatUnspecified KeyFormat = iota
	// KeyFormatRaw stores row keys verbatim.
	KeyFormatRaw
	// KeyFormatHashed stores a hash of the row key in place of the key.
	KeyFormatHashed
	// KeyFormatHashPrefixed prefixes the row key with a hash for even
	// region distribution while keeping the key readable.
	KeyFormatHashPrefixed
)

func (k KeyFormat) String() string {
	switch k {
	case KeyFormatRaw:
		return "RAW"
	case KeyFormatHashed:
		return "HASHED"
	case KeyFormatHashPrefixed:
		return "HASH_PREFIXED"
	default:
		return "UNSPECIFIED"
	}
}

// MarshalJSON renders this KeyFormat as its wire string, matching the
// descriptor's JSON encoding of every enum field.
func (k KeyFormat) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses a KeyFormat from its wire string.
func (k *KeyFormat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "", "UNSPECIFIED":
		*k = KeyFormatUnspecified
	case "RAW":
		*k = KeyFormatRaw
	case "HASHED":
		*k = KeyFormatHashed
	case "HASH_PREFIXED":
		*k = KeyFormatHashPrefixed
	default:
		return fmt.Errorf("layout: unrecognized keysFormat %q", s)
	}
	return nil
}

// CompressionType selects the block compression codec for a locality group.
type CompressionType int

const (
	// CompressionNone disables compression.
	CompressionNone CompressionType = iota
	// CompressionGZ compresses blocks with gzip.
	CompressionGZ
	// CompressionLZO compresses blocks with LZO.
	CompressionLZO
	// CompressionSnappy compresses blocks with Snappy.
	CompressionSnappy
)

func (c CompressionType) String() string {
	switch c {
	case CompressionGZ:
		return "GZ"
	case CompressionLZO:
		return "LZO"
	case CompressionSnappy:
		return "SNAPPY"
	default:
		return "NONE"
	}
}

// MarshalJSON renders this CompressionType as its wire string.
func (c CompressionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses a CompressionType from its wire string.
func (c *CompressionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "", "NONE":
		*c = CompressionNone
	case "GZ":
		*c = CompressionGZ
	case "LZO":
		*c = CompressionLZO
	case "SNAPPY":
		*c = CompressionSnappy
	default:
		return fmt.Errorf("layout: unrecognized compression %q", s)
	}
	return nil
}

// SchemaType selects how a CellSchemaDesc's Value is interpreted.
type SchemaType int

const (
	// SchemaTypeUnspecified marks a descriptor that never set a schema type.
	SchemaTypeUnspecified SchemaType = iota
	// SchemaTypeInline means Value is a schema literal, parsed in place.
	SchemaTypeInline
	// SchemaTypeClass means Value is a fully-qualified class name whose
	// schema is derived from a compiled type, when one can be located.
	SchemaTypeClass
	// SchemaTypeCounter means the cell has no Avro schema: it holds a
	// 64-bit big-endian integer maintained by atomic increment.
	SchemaTypeCounter
)

func (t SchemaType) String() string {
	switch t {
	case SchemaTypeInline:
		return "INLINE"
	case SchemaTypeClass:
		return "CLASS"
	case SchemaTypeCounter:
		return "COUNTER"
	default:
		return "UNSPECIFIED"
	}
}

// MarshalJSON renders this SchemaType as its wire string.
func (t SchemaType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON parses a SchemaType from its wire string.
func (t *SchemaType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "", "UNSPECIFIED":
		*t = SchemaTypeUnspecified
	case "INLINE":
		*t = SchemaTypeInline
	case "CLASS":
		*t = SchemaTypeClass
	case "COUNTER":
		*t = SchemaTypeCounter
	default:
		return fmt.Errorf("layout: unrecognized schema type %q", s)
	}
	return nil
}

// SchemaStorage selects how a decoded cell value is prefixed on disk. It is
// also called the cell format. Immutable across updates.
type SchemaStorage int

const (
	// StorageUnspecified marks a descriptor that never set a storage kind.
	StorageUnspecified SchemaStorage = iota
	// StorageHash prefixes cells with a hash of their writer schema.
	StorageHash
	// StorageUID prefixes cells with a small UID assigned to their writer schema.
	StorageUID
	// StorageFinal stores cells with no schema prefix at all.
	StorageFinal
)

func (s SchemaStorage) String() string {
	switch s {
	case StorageHash:
		return "HASH"
	case StorageUID:
		return "UID"
	case StorageFinal:
		return "FINAL"
	default:
		return "UNSPECIFIED"
	}
}

// MarshalJSON renders this SchemaStorage as its wire string.
func (s SchemaStorage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses a SchemaStorage from its wire string.
func (s *SchemaStorage) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "", "UNSPECIFIED":
		*s = StorageUnspecified
	case "HASH":
		*s = StorageHash
	case "UID":
		*s = StorageUID
	case "FINAL":
		*s = StorageFinal
	default:
		return fmt.Errorf("layout: unrecognized storage %q", str)
	}
	return nil
}

// CellSchemaDesc describes a column or map family's value schema as it
// appears in a layout descriptor.
type CellSchemaDesc struct {
	Type    SchemaType    `json:"type"`
	Value   string        `json:"value,omitempty"`
	Storage SchemaStorage `json:"storage"`
}

// Clone returns a deep copy of this CellSchemaDesc.
func (c *CellSchemaDesc) Clone() *CellSchemaDesc {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// ColumnDesc describes a single column inside a group-type family.
type ColumnDesc struct {
	Name         string         `json:"name"`
	Aliases      []string       `json:"aliases,omitempty"`
	Description  string         `json:"description,omitempty"`
	ID           int32          `json:"id,omitempty"`
	RenamedFrom  string         `json:"renamedFrom,omitempty"`
	Delete       bool           `json:"delete,omitempty"`
	ColumnSchema CellSchemaDesc `json:"columnSchema"`
}

// Clone returns a deep copy of this ColumnDesc.
func (c *ColumnDesc) Clone() *ColumnDesc {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Aliases = append([]string(nil), c.Aliases...)
	return &clone
}

// Names returns the primary name followed by every alias.
func (c *ColumnDesc) Names() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// FamilyDesc describes a column family: either a group family (Columns
// non-empty, MapSchema nil) or a map family (MapSchema non-nil, Columns
// empty). Exactly one of the two must be set on a live (non-deleted) family.
type FamilyDesc struct {
	Name        string          `json:"name"`
	Aliases     []string        `json:"aliases,omitempty"`
	Description string          `json:"description,omitempty"`
	ID          int32           `json:"id,omitempty"`
	RenamedFrom string          `json:"renamedFrom,omitempty"`
	Delete      bool            `json:"delete,omitempty"`
	Columns     []ColumnDesc    `json:"columns,omitempty"`
	MapSchema   *CellSchemaDesc `json:"mapSchema,omitempty"`
}

// Clone returns a deep copy of this FamilyDesc, including its columns.
func (f *FamilyDesc) Clone() *FamilyDesc {
	if f == nil {
		return nil
	}
	clone := *f
	clone.Aliases = append([]string(nil), f.Aliases...)
	clone.MapSchema = f.MapSchema.Clone()
	clone.Columns = make([]ColumnDesc, len(f.Columns))
	for i := range f.Columns {
		clone.Columns[i] = *f.Columns[i].Clone()
	}
	return &clone
}

// Names returns the primary name followed by every alias.
func (f *FamilyDesc) Names() []string {
	return append([]string{f.Name}, f.Aliases...)
}

// IsMapType returns true iff this descriptor describes a map-type family.
func (f *FamilyDesc) IsMapType() bool {
	return f.MapSchema != nil
}

// LocalityGroupDesc describes a locality group: a storage-tier grouping of
// families that share retention, compression, versioning, and
// memory-vs-disk placement.
type LocalityGroupDesc struct {
	Name        string          `json:"name"`
	Aliases     []string        `json:"aliases,omitempty"`
	Description string          `json:"description,omitempty"`
	InMemory    bool            `json:"inMemory,omitempty"`
	TTLSeconds  int32           `json:"ttlSeconds"`
	MaxVersions int32           `json:"maxVersions"`
	Compression CompressionType `json:"compression"`
	ID          int32           `json:"id,omitempty"`
	RenamedFrom string          `json:"renamedFrom,omitempty"`
	Delete      bool            `json:"delete,omitempty"`
	Families    []FamilyDesc    `json:"families,omitempty"`
}

// Clone returns a deep copy of this LocalityGroupDesc, including its families.
func (g *LocalityGroupDesc) Clone() *LocalityGroupDesc {
	if g == nil {
		return nil
	}
	clone := *g
	clone.Aliases = append([]string(nil), g.Aliases...)
	clone.Families = make([]FamilyDesc, len(g.Families))
	for i := range g.Families {
		clone.Families[i] = *g.Families[i].Clone()
	}
	return &clone
}

// Names returns the primary name followed by every alias.
func (g *LocalityGroupDesc) Names() []string {
	return append([]string{g.Name}, g.Aliases...)
}

// TableLayoutDesc is the top-level, self-describing layout descriptor: the
// only serialised form a table's layout ever takes. It is what Build
// consumes and what a frozen TableLayout's Descriptor method returns.
type TableLayoutDesc struct {
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	KeysFormat      KeyFormat           `json:"keysFormat"`
	LayoutID        string              `json:"layoutId,omitempty"`
	LocalityGroups  []LocalityGroupDesc `json:"localityGroups,omitempty"`
	ReferenceLayout string              `json:"referenceLayout,omitempty"`
}

// Clone returns a deep copy of this TableLayoutDesc, including every nested
// locality group, family, and column. Build always clones its input before
// working on it, so the caller's original descriptor is never mutated even
// though the compiler clears RenamedFrom fields as it consumes them.
func (t *TableLayoutDesc) Clone() *TableLayoutDesc {
	if t == nil {
		return nil
	}
	clone := *t
	clone.LocalityGroups = make([]LocalityGroupDesc, len(t.LocalityGroups))
	for i := range t.LocalityGroups {
		clone.LocalityGroups[i] = *t.LocalityGroups[i].Clone()
	}
	return &clone
}
