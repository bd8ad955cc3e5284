package layout

// NameValidator supplies the two boolean predicates the compiler uses to
// reject malformed identifiers. Both predicates are expected to be pure and
// deterministic; they never return an error, only a verdict — the calling
// builder is the one that raises errors.InvalidLayout on rejection.
type NameValidator interface {
	// IsValidName reports whether s is an acceptable primary name.
	IsValidName(s string) bool
	// IsValidAlias reports whether s is an acceptable alias. Primary names
	// are also run through this predicate as a belt-and-suspenders check.
	IsValidAlias(s string) bool
}
