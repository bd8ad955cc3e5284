package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wcstore/tablelayout/logging"
)

func TestResolveInlinePrimitive(t *testing.T) {
	r := NewSchemaResolver(nil, nil, "")
	schema, err := r.Resolve(CellSchemaDesc{Type: SchemaTypeInline, Value: `"string"`})
	require.NoError(t, err)
	require.Equal(t, KindPrimitive, schema.Kind())
	require.Equal(t, "string", schema.String())
}

func TestResolveInlineBarePrimitive(t *testing.T) {
	r := NewSchemaResolver(nil, nil, "")
	schema, err := r.Resolve(CellSchemaDesc{Type: SchemaTypeInline, Value: "long"})
	require.NoError(t, err)
	require.Equal(t, KindPrimitive, schema.Kind())
}

func TestResolveInlineRecord(t *testing.T) {
	r := NewSchemaResolver(nil, nil, "")
	schema, err := r.Resolve(CellSchemaDesc{
		Type:  SchemaTypeInline,
		Value: `{"type":"record","name":"Event","fields":[]}`,
	})
	require.NoError(t, err)
	require.Equal(t, KindRecord, schema.Kind())
}

func TestResolveInlineInvalid(t *testing.T) {
	r := NewSchemaResolver(nil, nil, "")
	_, err := r.Resolve(CellSchemaDesc{Type: SchemaTypeInline, Value: "not valid json {"})
	require.Error(t, err)
}

func TestResolveCounterReturnsNoSchema(t *testing.T) {
	r := NewSchemaResolver(nil, nil, "")
	schema, err := r.Resolve(CellSchemaDesc{Type: SchemaTypeCounter})
	require.NoError(t, err)
	require.Nil(t, schema)
}

type foundLocator struct{ schema ResolvedSchema }

func (f foundLocator) Locate(string) (ResolvedSchema, bool) { return f.schema, true }

func TestResolveClassFound(t *testing.T) {
	want := NamedSchema{SchemaKind: KindRecord, Name: "com.example.Event"}
	r := NewSchemaResolver(foundLocator{schema: want}, nil, "")
	schema, err := r.Resolve(CellSchemaDesc{Type: SchemaTypeClass, Value: "com.example.Event"})
	require.NoError(t, err)
	require.Equal(t, want, schema)
}

func TestResolveClassNotFoundToleratesAndLogs(t *testing.T) {
	r := NewSchemaResolver(NopClassLocator{}, logging.NopLogger{}, "")
	schema, err := r.Resolve(CellSchemaDesc{Type: SchemaTypeClass, Value: "com.example.Missing"})
	require.NoError(t, err)
	require.Nil(t, schema)
}

func TestResolveClassBadName(t *testing.T) {
	r := NewSchemaResolver(nil, nil, "")
	_, err := r.Resolve(CellSchemaDesc{Type: SchemaTypeClass, Value: "not a class!"})
	require.Error(t, err)
}
