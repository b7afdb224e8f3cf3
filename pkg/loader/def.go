package loader

import (
	"fmt"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/schema"
)

// Def declares one action kind: its registry type name, presentation
// metadata, and the schema of its configuration attributes.
type Def struct {
	Name        string        `json:"name" yaml:"name" mapstructure:"name"`
	DisplayName string        `json:"displayName,omitempty" yaml:"displayName,omitempty" mapstructure:"displayName"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Category    string        `json:"category,omitempty" yaml:"category,omitempty" mapstructure:"category"`
	Attrs       schema.Schema `json:"attrs,omitempty" yaml:"attrs,omitempty" mapstructure:"attrs"`
}

// Check verifies the definition is usable before registration.
func (d Def) Check() error {
	if d.Name == "" {
		return fmt.Errorf("action definition missing name")
	}
	if d.Name == blueprint.TypeGroup {
		return &blueprint.ConfigError{TypeName: d.Name, Reason: "reserved for build groups"}
	}
	if err := d.Attrs.CheckSpecs(); err != nil {
		return fmt.Errorf("action %q: %w", d.Name, err)
	}
	return nil
}

// Label returns the name to show in editors: DisplayName when set,
// otherwise the type name.
func (d Def) Label() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return d.Name
}
