package layout

import (
	"strings"

	idalloc "github.com/wcstore/tablelayout/id"

	"github.com/wcstore/tablelayout/errors"
)

// buildLocalityGroup implements C6: the same reconciliation pattern as C5,
// one level up (composing families via C5), plus the two locality-group
// local checks (positive ttlSeconds/maxVersions).
func buildLocalityGroup(desc LocalityGroupDesc, prior LocalityGroup, hasPrior bool, ctx *buildContext) (*localityGroupImpl, error) {
	if desc.TTLSeconds <= 0 {
		return nil, errors.NewInvalidLayout(errors.ReasonInvalidParameter,
			"locality group %q: ttlSeconds must be positive, got %d", desc.Name, desc.TTLSeconds)
	}
	if desc.MaxVersions <= 0 {
		return nil, errors.NewInvalidLayout(errors.ReasonInvalidParameter,
			"locality group %q: maxVersions must be positive, got %d", desc.Name, desc.MaxVersions)
	}
	if err := validateNames(ctx.nameValidator, desc.Name, desc.Aliases); err != nil {
		return nil, err
	}
	var priorID int32
	if hasPrior {
		priorID = prior.ID()
	}
	lgID, err := resolveEntityID(desc.ID, hasPrior, priorID)
	if err != nil {
		return nil, err
	}

	lg := &localityGroupImpl{
		primaryName: desc.Name,
		aliases:     append([]string(nil), desc.Aliases...),
		description: desc.Description,
		id:          lgID,
		inMemory:    desc.InMemory,
		ttlSeconds:  desc.TTLSeconds,
		maxVersions: desc.MaxVersions,
		compression: desc.Compression,
	}

	priorByName := map[string]Family{}
	if hasPrior {
		for _, f := range prior.Families() {
			priorByName[f.PrimaryName()] = f
		}
	}
	metas := make([]childMeta, len(desc.Families))
	for i, f := range desc.Families {
		metas[i] = childMeta{name: f.Name, renamedFrom: f.RenamedFrom, delete: f.Delete}
	}
	outcomes, err := reconcile("family", metas, priorByName)
	if err != nil {
		return nil, err
	}
	if len(priorByName) > 0 {
		return nil, errors.NewInvalidLayout(errors.ReasonOrphanPriorEntity,
			"locality group %q: prior family(-ies) not accounted for: %s", desc.Name, strings.Join(orphanNamesOf(priorByName), ", "))
	}

	built := make([]*familyImpl, len(outcomes))
	nameToFamily := make(map[string]*familyImpl, len(outcomes)*2)
	idToName := make(map[int32]string, len(outcomes))
	var unassignedIdx []int
	for i, oc := range outcomes {
		famDesc := desc.Families[oc.idx]
		famDesc.RenamedFrom = ""
		fam, err := buildFamily(famDesc, oc.prior, oc.hasPrior, ctx)
		if err != nil {
			return nil, err
		}
		built[i] = fam
		for _, n := range fam.Names() {
			if _, dup := nameToFamily[n]; dup {
				return nil, errors.NewInvalidLayout(errors.ReasonDuplicateName,
					"locality group %q: duplicate family name or alias %q", desc.Name, n)
			}
			nameToFamily[n] = fam
		}
		if fam.id > 0 {
			if other, dup := idToName[fam.id]; dup {
				return nil, errors.NewInvalidLayout(errors.ReasonDuplicateID,
					"locality group %q: family id %d shared by %q and %q", desc.Name, fam.id, other, fam.primaryName)
			}
			idToName[fam.id] = fam.primaryName
		} else {
			unassignedIdx = append(unassignedIdx, i)
		}
	}
	used := make(map[int32]bool, len(idToName))
	for famID := range idToName {
		used[famID] = true
	}
	assigned := idalloc.Allocate(used, len(unassignedIdx))
	for k, idx := range unassignedIdx {
		built[idx].id = assigned[k]
	}

	lg.families = built
	lg.nameToFamily = nameToFamily
	for _, f := range built {
		f.localityGroup = lg
	}
	return lg, nil
}
