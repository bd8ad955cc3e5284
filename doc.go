// Package layout compiles a declarative table layout descriptor — locality
// groups, column families, and columns for a wide-column table store built
// on a sparse row-store substrate — into an immutable, fully-resolved
// concrete layout. Every entity in the result carries a stable short integer
// identifier, every name has been validated and checked for uniqueness,
// every cell schema has been parsed, and, when the descriptor is presented
// as an update relative to a prior concrete layout, every transition has
// been checked against the mutation rules that keep the two layouts
// on-disk compatible.
//
// Build is a pure function: it performs no I/O and holds no state beyond
// the single TableLayout it returns. This root package defines the input
// descriptor types, the frozen output interfaces, and the collaborator
// interfaces (NameValidator, SchemaResolver, ClassLocator) an implementation
// may substitute, alongside the compiler itself.
package layout
