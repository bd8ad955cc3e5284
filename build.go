package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"

	"github.com/google/uuid"

	"github.com/wcstore/tablelayout/logging"
	"github.com/wcstore/tablelayout/naming"
)

// Option configures a Build call's collaborators. Every option defaults to
// a sensible package-provided implementation, so most callers pass none.
type Option func(*options)

type options struct {
	nameValidator  NameValidator
	schemaResolver SchemaResolver
	classLocator   ClassLocator
	logger         logging.Logger
}

// WithNameValidator overrides the default identifier-based NameValidator (C1).
func WithNameValidator(v NameValidator) Option {
	return func(o *options) { o.nameValidator = v }
}

// WithSchemaResolver overrides the default Resolver (C2). It takes
// precedence over WithClassLocator: when both are supplied, the custom
// resolver is used as-is and the class locator is ignored.
func WithSchemaResolver(r SchemaResolver) Option {
	return func(o *options) { o.schemaResolver = r }
}

// WithClassLocator supplies the ClassLocator consulted for CLASS cell
// schemas, wrapped in a ClassCache so a single Build call never asks it
// about the same class name twice. Ignored if WithSchemaResolver is also
// supplied. Defaults to NopClassLocator.
func WithClassLocator(l ClassLocator) Option {
	return func(o *options) { o.classLocator = l }
}

// WithLogger overrides the default logging.Logger, used for the one
// tolerated failure mode in C2 (a CLASS schema whose class cannot be located).
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

func resolveOptions(opts []Option, buildID string) *options {
	o := &options{
		nameValidator: naming.New(),
		logger:        logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.schemaResolver == nil {
		var locator ClassLocator
		if o.classLocator != nil {
			locator = NewClassCache(o.classLocator)
		}
		o.schemaResolver = NewSchemaResolver(locator, o.logger, buildID)
	}
	return o
}

// Build compiles desc into a frozen TableLayout. When prior is non-nil, desc
// is treated as an update: every locality group, family, and column is
// reconciled against prior under the rename/delete/modify rules, IDs are
// preserved wherever an entity survives, and any forbidden mutation (a
// family's kind flipping, the table's key encoding changing, a prior child
// going unaccounted for) is reported as an InvalidLayout error. Build never
// mutates desc — it deep-copies before doing anything else — and never
// partially succeeds: either a fully frozen TableLayout comes back, or a
// structured error does.
func Build(desc *TableLayoutDesc, prior TableLayout, opts ...Option) (TableLayout, error) {
	buildID := uuid.NewString()
	o := resolveOptions(opts, buildID)
	ctx := &buildContext{
		nameValidator:  o.nameValidator,
		schemaResolver: o.schemaResolver,
	}
	return compile(desc, prior, ctx)
}

// CreateFromEffectiveJSON reads r to EOF, decodes it as a TableLayoutDesc,
// and builds it with no prior layout. The caller owns r's lifecycle: Go's
// io.Reader carries no close contract, so unlike the source this reads from
// (which owned and closed its stream), this function neither assumes nor
// requires one — pass an io.ReadCloser and close it yourself if that's what
// you opened.
func CreateFromEffectiveJSON(r io.Reader, opts ...Option) (TableLayout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("layout: reading descriptor: %w", err)
	}
	var desc TableLayoutDesc
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("layout: decoding descriptor: %w", err)
	}
	return Build(&desc, nil, opts...)
}

// CreateFromEffectiveJSONResource opens name from fsys and delegates to
// CreateFromEffectiveJSON. fsys is typically an embed.FS bundled with the
// caller's binary, or an os.DirFS rooted at a config directory.
func CreateFromEffectiveJSONResource(fsys fs.FS, name string, opts ...Option) (TableLayout, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("layout: opening resource %q: %w", name, err)
	}
	defer f.Close()
	return CreateFromEffectiveJSON(f, opts...)
}
