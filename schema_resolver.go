package layout

// ClassLocator stands in for "the environment can locate the referenced
// compiled type" (spec language for a CLASS cell schema). A found class
// yields the ResolvedSchema derived from it; when a class cannot be
// located, that is not fatal — the resolver logs the miss and validation
// still succeeds, since a layout may be validated on a node that never
// compiled in the caller's classes.
type ClassLocator interface {
	// Locate returns the schema derived from className, and whether it was found.
	Locate(className string) (ResolvedSchema, bool)
}

// SchemaResolver implements the parse/validate contract for a CellSchemaDesc.
// It is invoked during construction for its side effect (validation); its
// return value is what the read-side query surface (GetSchema) hands back.
//
//   - INLINE: Value is parsed as a schema literal. Any parse failure is an
//     InvalidLayout with reason InvalidSchema.
//   - CLASS: Value must satisfy the identifier rules for a qualified class
//     name. If ClassLocator finds it, its derived schema is returned. If not,
//     Resolve returns (nil, nil): validation succeeds, no schema is known.
//   - COUNTER: Resolve returns (nil, nil) unconditionally — a counter cell
//     has no Avro schema; its value is a 64-bit big-endian integer.
//
// Any other Type value is an InvalidLayout.
type SchemaResolver interface {
	Resolve(desc CellSchemaDesc) (ResolvedSchema, error)
}
