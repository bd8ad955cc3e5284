package layout

// buildContext carries the collaborators every level of the builder needs:
// the name validator (C1) and the schema resolver (C2).
type buildContext struct {
	nameValidator  NameValidator
	schemaResolver SchemaResolver
}
