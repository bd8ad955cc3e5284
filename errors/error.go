package errors

import (
	"fmt"
)

// Reason classifies why a layout descriptor failed to compile. Callers may
// switch on it instead of parsing InvalidLayout's message.
type Reason int

const (
	// ReasonUnspecified is used when a caller constructs an InvalidLayout
	// directly without picking a taxonomy entry.
	ReasonUnspecified Reason = iota
	// ReasonInvalidName marks a primary name that fails the name predicate.
	ReasonInvalidName
	// ReasonInvalidAlias marks an alias that fails the alias predicate.
	ReasonInvalidAlias
	// ReasonDuplicateName marks two siblings sharing a name or alias.
	ReasonDuplicateName
	// ReasonDuplicateID marks two siblings sharing an ID.
	ReasonDuplicateID
	// ReasonIDMismatch marks a descriptor ID that disagrees with the prior layout.
	ReasonIDMismatch
	// ReasonForbiddenMutation marks a change disallowed across an update
	// (family kind flip, key encoding change, storage change, table name change).
	ReasonForbiddenMutation
	// ReasonInvalidRename marks a renamedFrom with no matching prior entity.
	ReasonInvalidRename
	// ReasonInvalidDelete marks a delete flag on a name absent from the prior layout.
	ReasonInvalidDelete
	// ReasonOrphanPriorEntity marks a prior child never accounted for in the update.
	ReasonOrphanPriorEntity
	// ReasonInvalidSchema marks a cell schema that failed to parse.
	ReasonInvalidSchema
	// ReasonInvalidParameter marks a structurally invalid parameter
	// (non-positive ttl/maxVersions, a family with both columns and a map schema,
	// an unqualified lookup against a group family).
	ReasonInvalidParameter
	// ReasonInvalidLayoutID marks a non-numeric prior layoutId during auto-increment.
	ReasonInvalidLayoutID
)

func (r Reason) String() string {
	switch r {
	case ReasonInvalidName:
		return "InvalidName"
	case ReasonInvalidAlias:
		return "InvalidAlias"
	case ReasonDuplicateName:
		return "DuplicateName"
	case ReasonDuplicateID:
		return "DuplicateId"
	case ReasonIDMismatch:
		return "IdMismatch"
	case ReasonForbiddenMutation:
		return "ForbiddenMutation"
	case ReasonInvalidRename:
		return "InvalidRename"
	case ReasonInvalidDelete:
		return "InvalidDelete"
	case ReasonOrphanPriorEntity:
		return "OrphanPriorEntity"
	case ReasonInvalidSchema:
		return "InvalidSchema"
	case ReasonInvalidParameter:
		return "InvalidParameter"
	case ReasonInvalidLayoutID:
		return "InvalidLayoutId"
	default:
		return "Unspecified"
	}
}

// InvalidLayout is the single structured error raised by every validation
// failure during layout construction. Construction either returns a fully
// frozen layout or one of these; it never partially succeeds.
type InvalidLayout struct {
	Reason  Reason
	Message string
}

// NewInvalidLayout constructs an InvalidLayout for the given taxonomy entry.
func NewInvalidLayout(reason Reason, format string, args ...interface{}) *InvalidLayout {
	return &InvalidLayout{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Error returns a textual representation of this InvalidLayout.
func (e *InvalidLayout) Error() string {
	return fmt.Sprintf("invalid layout (%s): %s", e.Reason, e.Message)
}

// NoSuchColumn occurs when a lookup names a column that does not exist in
// the layout. Distinct from InvalidLayout: it is a lookup-time error against
// an already-valid, already-frozen layout.
type NoSuchColumn struct{ Family, Qualifier string }

// Error returns a textual representation of this NoSuchColumn.
func (e NoSuchColumn) Error() string {
	if e.Qualifier == "" {
		return fmt.Sprintf("no such column family: %s", e.Family)
	}
	return fmt.Sprintf("no such column: %s:%s", e.Family, e.Qualifier)
}

// SchemaClassNotFound describes a CLASS cell schema naming a type the
// active ClassLocator cannot resolve. The default cell schema resolver does
// not return it: it reports such a miss as a log line and lets validation
// succeed, so this error never escapes to a caller of Build.
type SchemaClassNotFound struct{ ClassName string }

// Error returns a textual representation of this SchemaClassNotFound.
func (e SchemaClassNotFound) Error() string {
	return fmt.Sprintf("class not found: %s", e.ClassName)
}
