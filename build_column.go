package layout

import (
	"github.com/wcstore/tablelayout/errors"
)

// buildColumn implements C4: build one column layout, reconciling with an
// optional prior column.
func buildColumn(desc ColumnDesc, prior Column, hasPrior bool, ctx *buildContext) (*columnImpl, error) {
	if err := validateNames(ctx.nameValidator, desc.Name, desc.Aliases); err != nil {
		return nil, err
	}
	var priorID int32
	if hasPrior {
		priorID = prior.ID()
	}
	colID, err := resolveEntityID(desc.ID, hasPrior, priorID)
	if err != nil {
		return nil, err
	}
	if hasPrior && desc.ColumnSchema.Storage != prior.Schema().Storage {
		return nil, errors.NewInvalidLayout(errors.ReasonForbiddenMutation,
			"column %q: storage cannot change across an update: %s -> %s",
			desc.Name, prior.Schema().Storage, desc.ColumnSchema.Storage)
	}
	if _, err := ctx.schemaResolver.Resolve(desc.ColumnSchema); err != nil {
		return nil, err
	}
	return &columnImpl{
		primaryName: desc.Name,
		aliases:     append([]string(nil), desc.Aliases...),
		description: desc.Description,
		id:          colID,
		schema:      desc.ColumnSchema,
	}, nil
}
