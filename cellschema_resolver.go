// This file implements the default SchemaResolver (C2): it parses INLINE
// schema literals, validates and optionally resolves CLASS references
// through a ClassLocator, and treats COUNTER as having no Avro schema at
// all. It was originally a separate `cellschema` package, but every type it
// needs (ResolvedSchema, CellSchemaDesc, ...) lives in this root package, so
// splitting it out would have created an import cycle the same way
// `internal/build` did (see build_context.go and friends) — folded in here
// for the same reason.
package layout

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/wcstore/tablelayout/errors"
	"github.com/wcstore/tablelayout/logging"
)

var primitiveTypes = map[string]bool{
	"null": true, "boolean": true, "int": true, "long": true,
	"float": true, "double": true, "bytes": true, "string": true,
}

var qualifiedClassNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// NopClassLocator never finds a class. It's the default ClassLocator: a
// layout should still validate cleanly on a node that never compiled in the
// caller's classes.
type NopClassLocator struct{}

// Locate always reports not-found.
func (NopClassLocator) Locate(string) (ResolvedSchema, bool) { return nil, false }

// Resolver is the default SchemaResolver.
type Resolver struct {
	Locator ClassLocator
	Logger  logging.Logger
	BuildID string
}

// NewSchemaResolver returns a Resolver. A nil locator defaults to
// NopClassLocator; a nil logger defaults to logging.NopLogger. buildID tags
// every log line this resolver emits, so callers should pass the UUID
// generated for the Build call that owns this resolver.
func NewSchemaResolver(locator ClassLocator, log logging.Logger, buildID string) *Resolver {
	if locator == nil {
		locator = NopClassLocator{}
	}
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Resolver{Locator: locator, Logger: log, BuildID: buildID}
}

// Resolve implements SchemaResolver.
func (r *Resolver) Resolve(desc CellSchemaDesc) (ResolvedSchema, error) {
	switch desc.Type {
	case SchemaTypeInline:
		schema, err := parseInline(desc.Value)
		if err != nil {
			return nil, err
		}
		return schema, nil
	case SchemaTypeClass:
		if !qualifiedClassNamePattern.MatchString(desc.Value) {
			return nil, errors.NewInvalidLayout(errors.ReasonInvalidSchema, "not a qualified class name: %q", desc.Value)
		}
		schema, found := r.Locator.Locate(desc.Value)
		if !found {
			r.Logger.Logf(logging.InfoLevel, r.BuildID, "cell schema class %q not found; tolerating and leaving schema unresolved", desc.Value)
			return nil, nil
		}
		return schema, nil
	case SchemaTypeCounter:
		return nil, nil
	default:
		return nil, errors.NewInvalidLayout(errors.ReasonInvalidSchema, "unrecognized cell schema type: %s", desc.Type)
	}
}

// parseInline parses a minimal Avro-shaped schema literal: a bare or
// quoted primitive keyword, or a JSON object/array whose "type" (or
// element shape, for unions) identifies a record, enum, fixed, array, map,
// or union schema.
func parseInline(text string) (ResolvedSchema, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.NewInvalidLayout(errors.ReasonInvalidSchema, "empty schema literal")
	}
	if primitiveTypes[trimmed] {
		return PrimitiveSchema{Name: trimmed}, nil
	}
	switch trimmed[0] {
	case '"':
		var name string
		if err := json.Unmarshal([]byte(trimmed), &name); err != nil {
			return nil, errors.NewInvalidLayout(errors.ReasonInvalidSchema, "invalid schema literal: %v", err)
		}
		if !primitiveTypes[name] {
			return nil, errors.NewInvalidLayout(errors.ReasonInvalidSchema, "unknown primitive type: %s", name)
		}
		return PrimitiveSchema{Name: name}, nil
	case '[':
		var union []json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &union); err != nil {
			return nil, errors.NewInvalidLayout(errors.ReasonInvalidSchema, "invalid union schema: %v", err)
		}
		return CompositeSchema{SchemaKind: KindUnion, Raw: trimmed}, nil
	case '{':
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
			return nil, errors.NewInvalidLayout(errors.ReasonInvalidSchema, "invalid schema literal: %v", err)
		}
		typeVal, _ := obj["type"].(string)
		switch typeVal {
		case "record", "enum", "fixed":
			name, _ := obj["name"].(string)
			kind := KindRecord
			switch typeVal {
			case "enum":
				kind = KindEnum
			case "fixed":
				kind = KindFixed
			}
			return NamedSchema{SchemaKind: kind, Name: name, Raw: trimmed}, nil
		case "array":
			return CompositeSchema{SchemaKind: KindArray, Raw: trimmed}, nil
		case "map":
			return CompositeSchema{SchemaKind: KindMap, Raw: trimmed}, nil
		case "":
			return nil, errors.NewInvalidLayout(errors.ReasonInvalidSchema, "schema object missing \"type\"")
		default:
			if primitiveTypes[typeVal] {
				return PrimitiveSchema{Name: typeVal}, nil
			}
			return nil, errors.NewInvalidLayout(errors.ReasonInvalidSchema, "unrecognized schema type: %q", typeVal)
		}
	default:
		return nil, errors.NewInvalidLayout(errors.ReasonInvalidSchema, "invalid schema literal: %s", trimmed)
	}
}
