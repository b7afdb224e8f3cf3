package blueprint

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned by Registry.Create when a document names a
// type that is not registered. Loading a tree treats this as "nothing to
// build" so documents referencing removed action kinds still open.
var ErrUnknownType = errors.New("unknown build item type")

// ConfigError reports an invalid registration, such as reusing the
// reserved "group" type name.
type ConfigError struct {
	TypeName string
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cannot register type %q: %s", e.TypeName, e.Reason)
}

// TypeMismatchError reports a document whose declared type does not match
// the item it is being deserialized into.
type TypeMismatchError struct {
	Want string // the item's own type name
	Got  string // the document's declared type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("item type %q does not match document type %q", e.Want, e.Got)
}

// InvalidChildError reports a rejected tree-edit argument.
type InvalidChildError struct {
	Reason string
}

func (e *InvalidChildError) Error() string {
	return "invalid child: " + e.Reason
}

// SchemaError reports a structurally broken document: missing required
// keys, wrong value shapes, or a root that is not a group.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return "invalid blueprint document: " + e.Reason
	}
	return fmt.Sprintf("invalid blueprint document: field %q: %s", e.Field, e.Reason)
}
