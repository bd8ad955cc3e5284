package layout

import (
	"strconv"
	"strings"

	idalloc "github.com/wcstore/tablelayout/id"

	"github.com/wcstore/tablelayout/errors"
)

// compile implements C7: the top-level orchestration. It deep-copies desc,
// validates the table name, checks the immutable-across-updates fields
// against prior, computes the new layoutId, reconciles locality groups
// (composing C6), accumulates table-wide uniqueness indices as it goes, and
// fills any still-unassigned locality-group IDs via the C3 allocator.
func compile(desc *TableLayoutDesc, prior TableLayout, ctx *buildContext) (TableLayout, error) {
	working := desc.Clone()

	if !ctx.nameValidator.IsValidName(working.Name) {
		return nil, errors.NewInvalidLayout(errors.ReasonInvalidName, "invalid table name: %q", working.Name)
	}

	var hasPrior bool
	if prior != nil {
		hasPrior = true
		if working.Name != prior.Name() {
			return nil, errors.NewInvalidLayout(errors.ReasonForbiddenMutation,
				"table name cannot change across an update: %q -> %q", prior.Name(), working.Name)
		}
		if working.KeysFormat != prior.KeysFormat() {
			return nil, errors.NewInvalidLayout(errors.ReasonForbiddenMutation,
				"key encoding cannot change across an update: %s -> %s", prior.KeysFormat(), working.KeysFormat)
		}
	}

	layoutID, err := resolveLayoutID(working.LayoutID, hasPrior, prior)
	if err != nil {
		return nil, err
	}

	table := &tableLayoutImpl{
		name:        working.Name,
		description: working.Description,
		keysFormat:  working.KeysFormat,
		layoutID:    layoutID,
		resolver:    ctx.schemaResolver,
	}

	priorByName := map[string]LocalityGroup{}
	if hasPrior {
		for _, g := range prior.LocalityGroups() {
			priorByName[g.PrimaryName()] = g
		}
	}
	metas := make([]childMeta, len(working.LocalityGroups))
	for i, g := range working.LocalityGroups {
		metas[i] = childMeta{name: g.Name, renamedFrom: g.RenamedFrom, delete: g.Delete}
	}
	outcomes, err := reconcile("locality group", metas, priorByName)
	if err != nil {
		return nil, err
	}
	if len(priorByName) > 0 {
		return nil, errors.NewInvalidLayout(errors.ReasonOrphanPriorEntity,
			"prior locality group(s) not accounted for: %s", strings.Join(orphanNamesOf(priorByName), ", "))
	}

	built := make([]*localityGroupImpl, len(outcomes))
	lgByName := make(map[string]*localityGroupImpl, len(outcomes)*2)
	lgIDToName := make(map[int32]string, len(outcomes))
	familyByName := make(map[string]*familyImpl)
	columnNames := make([]ColumnName, 0)
	var unassignedIdx []int
	for i, oc := range outcomes {
		lgDesc := working.LocalityGroups[oc.idx]
		lgDesc.RenamedFrom = ""
		lg, err := buildLocalityGroup(lgDesc, oc.prior, oc.hasPrior, ctx)
		if err != nil {
			return nil, err
		}
		built[i] = lg
		for _, n := range lg.Names() {
			if _, dup := lgByName[n]; dup {
				return nil, errors.NewInvalidLayout(errors.ReasonDuplicateName, "duplicate locality group name or alias %q", n)
			}
			lgByName[n] = lg
		}
		if lg.id > 0 {
			if other, dup := lgIDToName[lg.id]; dup {
				return nil, errors.NewInvalidLayout(errors.ReasonDuplicateID,
					"locality group id %d shared by %q and %q", lg.id, other, lg.primaryName)
			}
			lgIDToName[lg.id] = lg.primaryName
		} else {
			unassignedIdx = append(unassignedIdx, i)
		}

		for _, fam := range lg.families {
			for _, n := range fam.Names() {
				if _, dup := familyByName[n]; dup {
					return nil, errors.NewInvalidLayout(errors.ReasonDuplicateName, "duplicate family name or alias %q", n)
				}
				familyByName[n] = fam
			}
			if fam.isMap {
				columnNames = append(columnNames, NewFamilyColumnName(fam.primaryName))
			} else {
				for _, col := range fam.columns {
					columnNames = append(columnNames, NewColumnName(fam.primaryName, col.primaryName))
				}
			}
		}
	}
	usedLGIDs := make(map[int32]bool, len(lgIDToName))
	for lgID := range lgIDToName {
		usedLGIDs[lgID] = true
	}
	assigned := idalloc.Allocate(usedLGIDs, len(unassignedIdx))
	for k, idx := range unassignedIdx {
		built[idx].id = assigned[k]
	}

	table.localityGroups = built
	table.localityGroupByName = lgByName
	table.familyByName = familyByName
	table.columnNames = columnNames
	for _, lg := range built {
		lg.table = table
	}
	return table, nil
}

// resolveLayoutID implements the layoutId computation from C7 step 4: kept
// verbatim when supplied, else the successor of a numeric prior layoutId,
// else "1" for a first-ever layout. A non-numeric prior layoutId with no
// descriptor-supplied value is an error: auto-increment has nothing to
// increment.
func resolveLayoutID(declared string, hasPrior bool, prior TableLayout) (string, error) {
	if declared != "" {
		return declared, nil
	}
	if !hasPrior {
		return "1", nil
	}
	n, err := strconv.Atoi(prior.LayoutID())
	if err != nil {
		return "", errors.NewInvalidLayout(errors.ReasonInvalidLayoutID,
			"prior layoutId %q is not a decimal integer and no explicit layoutId was supplied", prior.LayoutID())
	}
	return strconv.Itoa(n + 1), nil
}
