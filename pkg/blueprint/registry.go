package blueprint

import (
	"errors"
	"sync"
)

// TypeGroup is the reserved type name permanently bound to Group.
const TypeGroup = "group"

// Registry maps serialized type names to item factories.
// Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Factory
}

// NewRegistry creates a registry with the reserved "group" binding in
// place. Tests construct isolated registries instead of sharing state.
func NewRegistry() *Registry {
	return &Registry{
		types: map[string]Factory{
			TypeGroup: func() Item { return NewGroup() },
		},
	}
}

// Register adds factories, deriving each registry key from the type name
// of the instance the factory produces. Registering under the reserved
// "group" name fails with a *ConfigError; otherwise the last registration
// for a given name wins.
func (r *Registry) Register(factories ...Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, factory := range factories {
		item := factory()
		if item == nil {
			return &ConfigError{Reason: "factory produced nil item"}
		}
		name := item.TypeName()
		if name == "" {
			return &ConfigError{Reason: "factory produced item with empty type name"}
		}
		if name == TypeGroup {
			return &ConfigError{TypeName: name, Reason: "reserved for build groups"}
		}
		r.types[name] = factory
	}
	return nil
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.types[name]
	return factory, ok
}

// Actions returns the registered factories whose items are Action
// variants, keyed by type name. Group and any other non-action kinds are
// excluded.
func (r *Registry) Actions() map[string]Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actions := make(map[string]Factory, len(r.types))
	for name, factory := range r.types {
		if _, ok := factory().(Action); ok {
			actions[name] = factory
		}
	}
	return actions
}

// Create builds an item from its serialized form: the document's declared
// type is looked up, a fresh instance is constructed, and the document is
// deserialized into it.
//
// An unregistered type returns ErrUnknownType, which callers may treat as
// "nothing to build" rather than a failure. Deserialization errors from
// the constructed item propagate unchanged.
func (r *Registry) Create(data map[string]any) (Item, error) {
	name, err := DocType(data)
	if err != nil {
		return nil, err
	}

	factory, ok := r.Lookup(name)
	if !ok {
		return nil, ErrUnknownType
	}

	item := factory()
	if err := item.Deserialize(r, data); err != nil {
		return nil, err
	}
	return item, nil
}

// IsUnknownType reports whether err is the unknown-type sentinel.
func IsUnknownType(err error) bool {
	return errors.Is(err, ErrUnknownType)
}
