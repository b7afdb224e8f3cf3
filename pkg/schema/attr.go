package schema

import "fmt"

// Attr is the spec for one configuration attribute of an action.
type Attr struct {
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Type        Kind   `json:"type" yaml:"type" mapstructure:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`

	// Default is applied when a document omits the attribute.
	// When nil the kind's zero value is used instead.
	Default any `json:"default,omitempty" yaml:"default,omitempty" mapstructure:"default"`

	// Optional marks attributes a document may omit without a default.
	Optional bool `json:"optional,omitempty" yaml:"optional,omitempty" mapstructure:"optional"`

	// Numeric constraints (int and float kinds).
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty" mapstructure:"min"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty" mapstructure:"max"`

	// Editor hints for float kinds.
	Decimals int     `json:"decimals,omitempty" yaml:"decimals,omitempty" mapstructure:"decimals"`
	Step     float64 `json:"step,omitempty" yaml:"step,omitempty" mapstructure:"step"`

	// Options enumerates the choices for option kinds. Values are stored
	// as an index into this list.
	Options []string `json:"options,omitempty" yaml:"options,omitempty" mapstructure:"options"`
}

// Num is a convenience for building *float64 constraint literals.
func Num(v float64) *float64 { return &v }

// ValidateValue checks a single value against the spec, including
// kind-specific constraints.
func (a Attr) ValidateValue(value any) error {
	if err := a.Type.Validate(value); err != nil {
		return err
	}

	switch a.Type {
	case KindOption:
		idx := asInt(value)
		if idx < 0 || idx >= len(a.Options) {
			return fmt.Errorf("option index %d out of range (have %d options)", idx, len(a.Options))
		}
	case KindInt, KindFloat:
		f, ok := asFloat(value)
		if !ok {
			return nil
		}
		if a.Min != nil && f < *a.Min {
			return fmt.Errorf("value %v below minimum %v", value, *a.Min)
		}
		if a.Max != nil && f > *a.Max {
			return fmt.Errorf("value %v above maximum %v", value, *a.Max)
		}
	}
	return nil
}

// DefaultValue returns the value an omitted attribute takes.
func (a Attr) DefaultValue() any {
	if a.Default != nil {
		return a.Default
	}
	return a.Type.zero()
}

// Schema is the ordered list of attribute specs for one action kind.
// Order is preserved because editors present attributes in declared order.
type Schema []Attr

// ByName returns the spec for the named attribute.
func (s Schema) ByName(name string) (Attr, bool) {
	for _, a := range s {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// Defaults builds a full value map from the specs' defaults.
func (s Schema) Defaults() map[string]any {
	values := make(map[string]any, len(s))
	for _, a := range s {
		if a.Optional && a.Default == nil {
			continue
		}
		values[a.Name] = a.DefaultValue()
	}
	return values
}

// Validate checks a value map against the schema. All failures are
// collected and returned as an *AggregateError. Keys not covered by the
// schema are ignored; actions may carry host-specific extras.
func (s Schema) Validate(values map[string]any) error {
	var errs []error

	for _, a := range s {
		value, ok := values[a.Name]
		if !ok {
			if a.Optional || a.Default != nil {
				continue
			}
			errs = append(errs, &ValidationError{Attr: a.Name, Reason: "required"})
			continue
		}
		if err := a.ValidateValue(value); err != nil {
			errs = append(errs, &ValidationError{Attr: a.Name, Reason: err.Error(), Value: value})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// CheckSpecs verifies the schema itself is well formed: every attribute
// is named, has a known kind, and option kinds declare options.
func (s Schema) CheckSpecs() error {
	var errs []error
	seen := make(map[string]bool, len(s))

	for i, a := range s {
		if a.Name == "" {
			errs = append(errs, &ValidationError{Attr: fmt.Sprintf("#%d", i), Reason: "missing name"})
			continue
		}
		if seen[a.Name] {
			errs = append(errs, &ValidationError{Attr: a.Name, Reason: "duplicate attribute name"})
		}
		seen[a.Name] = true

		if _, err := ParseKind(string(a.Type)); err != nil {
			errs = append(errs, &ValidationError{Attr: a.Name, Reason: err.Error()})
			continue
		}
		if a.Type == KindOption && len(a.Options) == 0 {
			errs = append(errs, &ValidationError{Attr: a.Name, Reason: "option kind declares no options"})
		}
		if a.Default != nil {
			if err := a.ValidateValue(a.Default); err != nil {
				errs = append(errs, &ValidationError{Attr: a.Name, Reason: "bad default: " + err.Error(), Value: a.Default})
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
