package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/schema"
	"github.com/mitchellh/mapstructure"
)

// ErrNotRunnable is returned by DeclaredAction.Run when no RunFunc is
// bound for the action's type. Definition-only sessions (editing,
// validation) never need one.
var ErrNotRunnable = errors.New("no runner bound for action")

// RunFunc executes one action against the host, given its validated
// attribute values.
type RunFunc func(ctx context.Context, values map[string]any) error

// DeclaredAction is a build action whose shape comes from a Def rather
// than a compiled-in type. Its attribute values are validated against the
// definition's schema on every deserialize.
type DeclaredAction struct {
	def    Def
	run    RunFunc
	values map[string]any
}

var _ blueprint.Action = (*DeclaredAction)(nil)

// NewDeclaredAction creates an instance populated with the schema's
// default values.
func NewDeclaredAction(def Def, run RunFunc) *DeclaredAction {
	return &DeclaredAction{
		def:    def,
		run:    run,
		values: def.Attrs.Defaults(),
	}
}

// Def returns the definition this action was declared from.
func (a *DeclaredAction) Def() Def { return a.def }

// DisplayName returns the definition's editor label.
func (a *DeclaredAction) DisplayName() string { return a.def.Label() }

// TypeName returns the definition's registered type name.
func (a *DeclaredAction) TypeName() string { return a.def.Name }

// Attrs returns the attribute schema for this action kind.
func (a *DeclaredAction) Attrs() schema.Schema { return a.def.Attrs }

// Value returns the current value of one attribute.
func (a *DeclaredAction) Value(name string) (any, bool) {
	v, ok := a.values[name]
	return v, ok
}

// SetValue validates and stores one attribute value.
func (a *DeclaredAction) SetValue(name string, value any) error {
	attr, ok := a.def.Attrs.ByName(name)
	if !ok {
		return &schema.ValidationError{Attr: name, Reason: "not declared by this action"}
	}
	if err := attr.ValidateValue(value); err != nil {
		return &schema.ValidationError{Attr: name, Reason: err.Error(), Value: value}
	}
	a.values[name] = value
	return nil
}

// Values returns a copy of the attribute value map.
func (a *DeclaredAction) Values() map[string]any {
	values := make(map[string]any, len(a.values))
	for k, v := range a.values {
		values[k] = v
	}
	return values
}

// Serialize emits the type discriminator plus every attribute value.
func (a *DeclaredAction) Serialize() map[string]any {
	data := map[string]any{"type": a.TypeName()}
	for k, v := range a.values {
		data[k] = v
	}
	return data
}

// Deserialize checks the document type, applies schema defaults, overlays
// the document's values, and validates the result. Keys the schema does
// not cover are kept verbatim; hosts may stash extras on an action.
func (a *DeclaredAction) Deserialize(reg *blueprint.Registry, data map[string]any) error {
	if err := blueprint.CheckDocType(a, data); err != nil {
		return err
	}

	values := a.def.Attrs.Defaults()
	for k, v := range data {
		if k == "type" {
			continue
		}
		values[k] = v
	}

	if err := a.def.Attrs.Validate(values); err != nil {
		return fmt.Errorf("action %q: %w", a.TypeName(), err)
	}

	a.values = values
	return nil
}

// Run dispatches to the bound RunFunc.
func (a *DeclaredAction) Run(ctx context.Context) error {
	if a.run == nil {
		return fmt.Errorf("%w: %s", ErrNotRunnable, a.TypeName())
	}
	return a.run(ctx, a.Values())
}

// DecodeAttrs decodes an attribute value map into a typed config struct,
// using mapstructure tags. Weak typing smooths over JSON's float64
// integers.
func DecodeAttrs(values map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(values)
}
