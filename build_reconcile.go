package layout

import (
	"sort"

	"github.com/wcstore/tablelayout/errors"
)

// childMeta captures the three reconciliation-relevant fields that Column,
// Family, and LocalityGroup descriptors all carry: what to rename from
// (empty if this isn't a rename), whether it's being deleted, and its
// declared name (the prior lookup key when renamedFrom is empty, and the
// name used in error messages).
type childMeta struct {
	name        string
	renamedFrom string
	delete      bool
}

// outcome describes what a single descriptor child, at its original index,
// resolved to during reconciliation: whether a prior sibling matched it,
// and which one.
type outcome[P any] struct {
	idx      int
	prior    P
	hasPrior bool
}

// reconcile walks descriptor children in declaration order against
// priorByName (prior primary name -> prior entity), consuming matched
// entries from priorByName as it goes. It returns one outcome per
// surviving (non-deleted) child, in declaration order. After reconcile
// returns without error, any names remaining in priorByName were neither
// renamed, deleted, nor re-declared — callers must reject those as
// errors.ReasonOrphanPriorEntity using orphanNamesOf for the message.
func reconcile[P any](kind string, metas []childMeta, priorByName map[string]P) ([]outcome[P], error) {
	survivors := make([]outcome[P], 0, len(metas))
	for i, m := range metas {
		lookupName := m.name
		if m.renamedFrom != "" {
			lookupName = m.renamedFrom
		}
		prior, hadPrior := priorByName[lookupName]
		if m.renamedFrom != "" && !hadPrior {
			return nil, errors.NewInvalidLayout(errors.ReasonInvalidRename,
				"%s %q: renamedFrom %q does not name an existing prior %s", kind, m.name, m.renamedFrom, kind)
		}
		if hadPrior {
			delete(priorByName, lookupName)
		}
		if m.delete {
			if !hadPrior {
				return nil, errors.NewInvalidLayout(errors.ReasonInvalidDelete,
					"%s %q marked for deletion has no prior entry", kind, m.name)
			}
			continue
		}
		survivors = append(survivors, outcome[P]{idx: i, prior: prior, hasPrior: hadPrior})
	}
	return survivors, nil
}

// orphanNamesOf returns the sorted leftover keys of a prior-name map of any
// value type, for deterministic, testable error messages.
func orphanNamesOf[P any](priorByName map[string]P) []string {
	names := make([]string, 0, len(priorByName))
	for k := range priorByName {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// resolveEntityID implements the ID adoption rule shared by C4, C5, and C6:
// an explicit descriptor ID must match the prior entity's ID when one
// exists; a descriptor ID with no prior match is taken as an explicit
// request for a fresh ID; and with neither a descriptor ID nor a prior
// match, the entity is left unassigned (0) for the ID allocator (C3) to fill.
func resolveEntityID(declared int32, hasPrior bool, priorID int32) (int32, error) {
	if declared > 0 {
		if hasPrior && declared != priorID {
			return 0, errors.NewInvalidLayout(errors.ReasonIDMismatch,
				"descriptor id %d does not match prior id %d", declared, priorID)
		}
		return declared, nil
	}
	if hasPrior {
		return priorID, nil
	}
	return 0, nil
}
