package layout

import (
	"github.com/wcstore/tablelayout/errors"
)

// GetCellSchema implements C8's getCellSchema: if name's family is map-type,
// its shared value schema is returned regardless of qualifier. If it's
// group-type, a qualifier is required and must name an existing column —
// these two cases are never unified.
func (t *tableLayoutImpl) GetCellSchema(name ColumnName) (CellSchemaDesc, error) {
	fam, ok := t.familyByName[name.Family()]
	if !ok {
		return CellSchemaDesc{}, errors.NoSuchColumn{Family: name.Family()}
	}
	if fam.isMap {
		return fam.mapSchema, nil
	}
	qualifier, qualified := name.Qualifier()
	if !qualified {
		return CellSchemaDesc{}, errors.NewInvalidLayout(errors.ReasonInvalidParameter,
			"column lookup against group family %q requires a qualifier", name.Family())
	}
	col, ok := fam.nameToColumn[qualifier]
	if !ok {
		return CellSchemaDesc{}, errors.NoSuchColumn{Family: name.Family(), Qualifier: qualifier}
	}
	return col.schema, nil
}

// GetSchema implements C8's getSchema: C2 applied to GetCellSchema's result.
func (t *tableLayoutImpl) GetSchema(name ColumnName) (ResolvedSchema, error) {
	schemaDesc, err := t.GetCellSchema(name)
	if err != nil {
		return nil, err
	}
	return t.resolver.Resolve(schemaDesc)
}

// GetCellFormat implements C8's getCellFormat: the storage variant declared
// on the cell schema.
func (t *tableLayoutImpl) GetCellFormat(name ColumnName) (SchemaStorage, error) {
	schemaDesc, err := t.GetCellSchema(name)
	if err != nil {
		return StorageUnspecified, err
	}
	return schemaDesc.Storage, nil
}

// Exists implements C8's exists: an unknown family is false, a map family
// is true for any qualifier, a group family is true when unqualified, and
// otherwise depends on whether the qualifier names a real column.
func (t *tableLayoutImpl) Exists(name ColumnName) bool {
	fam, ok := t.familyByName[name.Family()]
	if !ok {
		return false
	}
	if fam.isMap {
		return true
	}
	qualifier, qualified := name.Qualifier()
	if !qualified {
		return true
	}
	_, ok = fam.nameToColumn[qualifier]
	return ok
}
