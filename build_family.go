package layout

import (
	"strings"

	idalloc "github.com/wcstore/tablelayout/id"

	"github.com/wcstore/tablelayout/errors"
)

// buildFamily implements C5: build one family, reconciling its children
// (columns, via C4) under the rename/delete/modify/add rules, and filling
// any still-unassigned column IDs via the C3 allocator.
func buildFamily(desc FamilyDesc, prior Family, hasPrior bool, ctx *buildContext) (*familyImpl, error) {
	if len(desc.Columns) > 0 && desc.MapSchema != nil {
		return nil, errors.NewInvalidLayout(errors.ReasonInvalidParameter,
			"family %q declares both columns and a map schema", desc.Name)
	}
	if err := validateNames(ctx.nameValidator, desc.Name, desc.Aliases); err != nil {
		return nil, err
	}
	var priorID int32
	if hasPrior {
		priorID = prior.ID()
	}
	famID, err := resolveEntityID(desc.ID, hasPrior, priorID)
	if err != nil {
		return nil, err
	}
	isMap := desc.IsMapType()
	if hasPrior && isMap != prior.IsMapType() {
		return nil, errors.NewInvalidLayout(errors.ReasonForbiddenMutation,
			"family %q changed kind (group/map) across update", desc.Name)
	}

	fam := &familyImpl{
		primaryName: desc.Name,
		aliases:     append([]string(nil), desc.Aliases...),
		description: desc.Description,
		id:          famID,
		isMap:       isMap,
	}

	if isMap {
		if hasPrior && desc.MapSchema.Storage != prior.MapSchema().Storage {
			return nil, errors.NewInvalidLayout(errors.ReasonForbiddenMutation,
				"family %q: storage cannot change across an update: %s -> %s",
				desc.Name, prior.MapSchema().Storage, desc.MapSchema.Storage)
		}
		if _, err := ctx.schemaResolver.Resolve(*desc.MapSchema); err != nil {
			return nil, err
		}
		fam.mapSchema = *desc.MapSchema
		return fam, nil
	}

	priorByName := map[string]Column{}
	if hasPrior {
		for _, c := range prior.Columns() {
			priorByName[c.PrimaryName()] = c
		}
	}
	metas := make([]childMeta, len(desc.Columns))
	for i, c := range desc.Columns {
		metas[i] = childMeta{name: c.Name, renamedFrom: c.RenamedFrom, delete: c.Delete}
	}
	outcomes, err := reconcile("column", metas, priorByName)
	if err != nil {
		return nil, err
	}
	if len(priorByName) > 0 {
		return nil, errors.NewInvalidLayout(errors.ReasonOrphanPriorEntity,
			"family %q: prior column(s) not accounted for: %s", desc.Name, strings.Join(orphanNamesOf(priorByName), ", "))
	}

	built := make([]*columnImpl, len(outcomes))
	nameToColumn := make(map[string]*columnImpl, len(outcomes)*2)
	idToName := make(map[int32]string, len(outcomes))
	var unassignedIdx []int
	for i, oc := range outcomes {
		colDesc := desc.Columns[oc.idx]
		colDesc.RenamedFrom = ""
		col, err := buildColumn(colDesc, oc.prior, oc.hasPrior, ctx)
		if err != nil {
			return nil, err
		}
		built[i] = col
		for _, n := range col.Names() {
			if _, dup := nameToColumn[n]; dup {
				return nil, errors.NewInvalidLayout(errors.ReasonDuplicateName,
					"family %q: duplicate column name or alias %q", desc.Name, n)
			}
			nameToColumn[n] = col
		}
		if col.id > 0 {
			if other, dup := idToName[col.id]; dup {
				return nil, errors.NewInvalidLayout(errors.ReasonDuplicateID,
					"family %q: column id %d shared by %q and %q", desc.Name, col.id, other, col.primaryName)
			}
			idToName[col.id] = col.primaryName
		} else {
			unassignedIdx = append(unassignedIdx, i)
		}
	}
	used := make(map[int32]bool, len(idToName))
	for colID := range idToName {
		used[colID] = true
	}
	assigned := idalloc.Allocate(used, len(unassignedIdx))
	for k, idx := range unassignedIdx {
		built[idx].id = assigned[k]
	}

	fam.columns = built
	fam.nameToColumn = nameToColumn
	for _, c := range built {
		c.family = fam
	}
	return fam, nil
}
