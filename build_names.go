package layout

import (
	"github.com/hashicorp/go-multierror"

	"github.com/wcstore/tablelayout/errors"
)

// validateNames checks primary against IsValidName, and primary plus every
// alias against IsValidAlias, accumulating every independent failure with
// go-multierror before returning a single error so a caller sees every bad
// name in a family at once instead of one at a time across repeated builds.
func validateNames(nv NameValidator, primary string, aliases []string) error {
	var merr *multierror.Error
	if !nv.IsValidName(primary) {
		merr = multierror.Append(merr, errors.NewInvalidLayout(errors.ReasonInvalidName, "invalid name: %q", primary))
	}
	if !nv.IsValidAlias(primary) {
		merr = multierror.Append(merr, errors.NewInvalidLayout(errors.ReasonInvalidAlias, "primary name %q fails alias rules", primary))
	}
	for _, a := range aliases {
		if !nv.IsValidAlias(a) {
			merr = multierror.Append(merr, errors.NewInvalidLayout(errors.ReasonInvalidAlias, "invalid alias: %q", a))
		}
	}
	return merr.ErrorOrNil()
}
