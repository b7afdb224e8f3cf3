// Package memory provides an in-memory blueprint store, mainly for tests
// and short-lived editor sessions.
package memory

import (
	"context"
	"sync"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/ports"
)

// Store implements ports.Store in memory. Safe for concurrent use.
//
// Blueprints are held in serialized form, so saved trees are fully
// isolated from later edits by the caller.
type Store struct {
	reg  *blueprint.Registry
	mu   sync.RWMutex
	docs map[string]map[string]any
}

var _ ports.Store = (*Store)(nil)

// NewStore creates an empty in-memory store. The registry is used to
// rebuild trees on Load.
func NewStore(reg *blueprint.Registry) *Store {
	return &Store{
		reg:  reg,
		docs: make(map[string]map[string]any),
	}
}

// Save snapshots the blueprint's serialized form.
func (s *Store) Save(ctx context.Context, name string, b *blueprint.Blueprint) error {
	doc := b.Serialize()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = doc
	return nil
}

// Load rebuilds the named blueprint from its stored document.
func (s *Store) Load(ctx context.Context, name string) (*blueprint.Blueprint, error) {
	s.mu.RLock()
	doc, ok := s.docs[name]
	s.mu.RUnlock()

	if !ok {
		return nil, ports.ErrNotFound
	}
	return blueprint.FromData(s.reg, doc)
}

// Delete removes the named blueprint.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, name)
	return nil
}

// List returns the stored blueprint names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	return names, nil
}
