// Package naming provides the default layout.NameValidator: a restricted
// identifier ruleset (letters, digits, underscore; no leading digit) shared
// by primary names and aliases alike.
package naming

import "regexp"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validator is the default layout.NameValidator implementation.
type Validator struct{}

// New returns a Validator.
func New() Validator { return Validator{} }

// IsValidName reports whether s is a well-formed primary name.
func (Validator) IsValidName(s string) bool {
	return identifierPattern.MatchString(s)
}

// IsValidAlias reports whether s is a well-formed alias. Uses the identical
// ruleset to IsValidName; primary names are also run through this
// predicate by callers as a belt-and-suspenders check.
func (Validator) IsValidAlias(s string) bool {
	return identifierPattern.MatchString(s)
}
