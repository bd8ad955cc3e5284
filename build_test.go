package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wcstore/tablelayout"
	"github.com/wcstore/tablelayout/errors"
)

func minimalDescriptor() *layout.TableLayoutDesc {
	return &layout.TableLayoutDesc{
		Name:       "t",
		KeysFormat: layout.KeyFormatRaw,
		LocalityGroups: []layout.LocalityGroupDesc{
			{
				Name:        "lg",
				TTLSeconds:  3600,
				MaxVersions: 1,
				Families: []layout.FamilyDesc{
					{
						Name: "f",
						Columns: []layout.ColumnDesc{
							{
								Name:         "c",
								ColumnSchema: layout.CellSchemaDesc{Type: layout.SchemaTypeInline, Value: `"string"`, Storage: layout.StorageHash},
							},
						},
					},
				},
			},
		},
	}
}

func TestMinimalCreation(t *testing.T) {
	built, err := layout.Build(minimalDescriptor(), nil)
	require.NoError(t, err)
	require.Equal(t, "1", built.LayoutID())

	lg, ok := built.LocalityGroupByName("lg")
	require.True(t, ok)
	require.EqualValues(t, 1, lg.ID())

	fam, ok := lg.FamilyByName("f")
	require.True(t, ok)
	require.EqualValues(t, 1, fam.ID())

	col, ok := fam.ColumnByName("c")
	require.True(t, ok)
	require.EqualValues(t, 1, col.ID())

	require.True(t, built.Exists(layout.NewColumnName("f", "c")))
	require.False(t, built.Exists(layout.NewColumnName("f", "missing")))
}

func TestRenamePreservesID(t *testing.T) {
	prior, err := layout.Build(minimalDescriptor(), nil)
	require.NoError(t, err)

	update := minimalDescriptor()
	update.LocalityGroups[0].Families[0].Columns[0].Name = "d"
	update.LocalityGroups[0].Families[0].Columns[0].RenamedFrom = "c"

	next, err := layout.Build(update, prior)
	require.NoError(t, err)
	require.Equal(t, "2", next.LayoutID())

	fam, ok := next.FamilyByName("f")
	require.True(t, ok)
	col, ok := fam.ColumnByName("d")
	require.True(t, ok)
	require.EqualValues(t, 1, col.ID())
	_, stillThere := fam.ColumnByName("c")
	require.False(t, stillThere)
}

func TestRejectKindFlip(t *testing.T) {
	prior, err := layout.Build(minimalDescriptor(), nil)
	require.NoError(t, err)

	update := minimalDescriptor()
	update.LocalityGroups[0].Families[0].Columns = nil
	update.LocalityGroups[0].Families[0].MapSchema = &layout.CellSchemaDesc{
		Type: layout.SchemaTypeInline, Value: `"string"`, Storage: layout.StorageHash,
	}

	_, err = layout.Build(update, prior)
	require.Error(t, err)
	var invalid *errors.InvalidLayout
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, errors.ReasonForbiddenMutation, invalid.Reason)
}

func TestRejectOrphanPrior(t *testing.T) {
	base := minimalDescriptor()
	base.LocalityGroups[0].Families[0].Columns = append(base.LocalityGroups[0].Families[0].Columns, layout.ColumnDesc{
		Name:         "c2",
		ColumnSchema: layout.CellSchemaDesc{Type: layout.SchemaTypeInline, Value: `"int"`, Storage: layout.StorageHash},
	})
	prior, err := layout.Build(base, nil)
	require.NoError(t, err)

	update := minimalDescriptor() // only mentions "c", not "c2", and doesn't delete it
	_, err = layout.Build(update, prior)
	require.Error(t, err)
	var invalid *errors.InvalidLayout
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, errors.ReasonOrphanPriorEntity, invalid.Reason)
	require.Contains(t, invalid.Message, "c2")
}

func TestDeletePath(t *testing.T) {
	base := minimalDescriptor()
	base.LocalityGroups[0].Families[0].Columns = append(base.LocalityGroups[0].Families[0].Columns, layout.ColumnDesc{
		Name:         "c2",
		ColumnSchema: layout.CellSchemaDesc{Type: layout.SchemaTypeInline, Value: `"int"`, Storage: layout.StorageHash},
	})
	prior, err := layout.Build(base, nil)
	require.NoError(t, err)

	update := minimalDescriptor()
	update.LocalityGroups[0].Families[0].Columns = append(update.LocalityGroups[0].Families[0].Columns, layout.ColumnDesc{
		Name:   "c2",
		Delete: true,
	})
	next, err := layout.Build(update, prior)
	require.NoError(t, err)

	fam, ok := next.FamilyByName("f")
	require.True(t, ok)
	require.Len(t, fam.Columns(), 1)
	_, stillThere := fam.ColumnByName("c2")
	require.False(t, stillThere)
}

func TestIDCollision(t *testing.T) {
	desc := minimalDescriptor()
	desc.LocalityGroups[0].Families[0].Columns[0].ID = 7
	desc.LocalityGroups[0].Families[0].Columns = append(desc.LocalityGroups[0].Families[0].Columns, layout.ColumnDesc{
		Name:         "c2",
		ID:           7,
		ColumnSchema: layout.CellSchemaDesc{Type: layout.SchemaTypeInline, Value: `"int"`, Storage: layout.StorageHash},
	})

	_, err := layout.Build(desc, nil)
	require.Error(t, err)
	var invalid *errors.InvalidLayout
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, errors.ReasonDuplicateID, invalid.Reason)
}

func TestKeyEncodingImmutable(t *testing.T) {
	prior, err := layout.Build(minimalDescriptor(), nil)
	require.NoError(t, err)

	update := minimalDescriptor()
	update.KeysFormat = layout.KeyFormatHashed
	_, err = layout.Build(update, prior)
	require.Error(t, err)
	var invalid *errors.InvalidLayout
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, errors.ReasonForbiddenMutation, invalid.Reason)
}

func TestIdempotence(t *testing.T) {
	// P9: building a concrete descriptor against itself as prior preserves
	// every ID and returns a structurally equal layout. The descriptor form
	// carries its layoutId, and an explicitly supplied layoutId is kept
	// verbatim, so layoutId does not advance either.
	first, err := layout.Build(minimalDescriptor(), nil)
	require.NoError(t, err)

	same := first.Descriptor()
	same.LayoutID = first.LayoutID() // already set by Descriptor(); stated here for clarity
	second, err := layout.Build(same, first)
	require.NoError(t, err)

	require.Equal(t, first.LayoutID(), second.LayoutID())
	fam1, _ := first.FamilyByName("f")
	fam2, _ := second.FamilyByName("f")
	require.Equal(t, fam1.ID(), fam2.ID())
	col1, _ := fam1.ColumnByName("c")
	col2, _ := fam2.ColumnByName("c")
	require.Equal(t, col1.ID(), col2.ID())
	require.True(t, first.Equals(second))
}

func TestMapFamilyExistsForAnyQualifier(t *testing.T) {
	desc := &layout.TableLayoutDesc{
		Name:       "t",
		KeysFormat: layout.KeyFormatRaw,
		LocalityGroups: []layout.LocalityGroupDesc{
			{
				Name: "lg", TTLSeconds: 3600, MaxVersions: 1,
				Families: []layout.FamilyDesc{
					{
						Name:      "m",
						MapSchema: &layout.CellSchemaDesc{Type: layout.SchemaTypeCounter, Storage: layout.StorageFinal},
					},
				},
			},
		},
	}
	built, err := layout.Build(desc, nil)
	require.NoError(t, err)
	require.True(t, built.Exists(layout.NewColumnName("m", "anything")))
	require.True(t, built.Exists(layout.NewFamilyColumnName("m")))

	_, err = built.GetCellSchema(layout.NewFamilyColumnName("m"))
	require.NoError(t, err)
}

func TestDescriptionsRoundTripThroughDescriptor(t *testing.T) {
	desc := minimalDescriptor()
	desc.LocalityGroups[0].Description = "hot data"
	desc.LocalityGroups[0].Families[0].Description = "wide columns"
	desc.LocalityGroups[0].Families[0].Columns[0].Description = "the c column"

	built, err := layout.Build(desc, nil)
	require.NoError(t, err)

	lg, ok := built.LocalityGroupByName("lg")
	require.True(t, ok)
	require.Equal(t, "hot data", lg.Description())

	fam, ok := lg.FamilyByName("f")
	require.True(t, ok)
	require.Equal(t, "wide columns", fam.Description())

	col, ok := fam.ColumnByName("c")
	require.True(t, ok)
	require.Equal(t, "the c column", col.Description())

	restored := built.Descriptor()
	require.Equal(t, "hot data", restored.LocalityGroups[0].Description)
	require.Equal(t, "wide columns", restored.LocalityGroups[0].Families[0].Description)
	require.Equal(t, "the c column", restored.LocalityGroups[0].Families[0].Columns[0].Description)
}

func TestGroupFamilyUnqualifiedLookupIsArgumentError(t *testing.T) {
	built, err := layout.Build(minimalDescriptor(), nil)
	require.NoError(t, err)
	_, err = built.GetCellSchema(layout.NewFamilyColumnName("f"))
	require.Error(t, err)
	var invalid *errors.InvalidLayout
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, errors.ReasonInvalidParameter, invalid.Reason)
}
