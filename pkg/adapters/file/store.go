// Package file provides a blueprint store backed by the local
// filesystem, one JSON document per blueprint.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/ports"
)

const docExt = ".json"

// Store implements ports.Store on a directory of JSON documents.
type Store struct {
	reg      *blueprint.Registry
	basePath string
}

var _ ports.Store = (*Store)(nil)

// New creates a store rooted at basePath. An empty basePath defaults to
// ".rigforge/blueprints" under the working directory.
func New(reg *blueprint.Registry, basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".rigforge", "blueprints")
	}
	return &Store{reg: reg, basePath: basePath}
}

// Save writes the blueprint document atomically: temp file, fsync, then
// rename into place so a crash never leaves a partial document.
func (s *Store) Save(ctx context.Context, name string, b *blueprint.Blueprint) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return fmt.Errorf("ensure blueprint directory: %w", err)
	}

	data, err := json.MarshalIndent(b.Serialize(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal blueprint: %w", err)
	}

	tmp, err := os.CreateTemp(s.basePath, "tmp-"+name+"-*"+docExt)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(name)); err != nil {
		return fmt.Errorf("rename temp file into place: %w", err)
	}
	return nil
}

// Load reads and rebuilds the named blueprint.
func (s *Store) Load(ctx context.Context, name string) (*blueprint.Blueprint, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("read blueprint file: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode blueprint file: %w", err)
	}
	return blueprint.FromData(s.reg, doc)
}

// Delete removes the named blueprint file.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blueprint file: %w", err)
	}
	return nil
}

// List returns the names of all stored blueprints.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list blueprint directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != docExt {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), docExt))
	}
	return names, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.basePath, name+docExt)
}

// checkName keeps names usable as file stems.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("blueprint name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("blueprint name cannot contain path separators: %q", name)
	}
	return nil
}
