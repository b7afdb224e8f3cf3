package ports

import (
	"context"
	"errors"

	"github.com/dkealton/rigforge/pkg/blueprint"
)

// ErrNotFound is returned when a named blueprint does not exist in a
// store.
var ErrNotFound = errors.New("blueprint not found")

// Store persists whole blueprints by name. Implementations carry the
// serialized document verbatim; they never edit trees.
type Store interface {
	// Save persists the blueprint under name, replacing any previous
	// version.
	Save(ctx context.Context, name string, b *blueprint.Blueprint) error

	// Load rebuilds the named blueprint. Unregistered action types inside
	// the document degrade per the blueprint contract; a missing name
	// returns ErrNotFound.
	Load(ctx context.Context, name string) (*blueprint.Blueprint, error)

	// Delete removes the named blueprint. Deleting a missing name is not
	// an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored blueprint names.
	List(ctx context.Context) ([]string, error)
}
