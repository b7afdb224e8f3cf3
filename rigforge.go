package rigforge

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/loader"
	"gopkg.in/yaml.v3"
)

// Version is the tool release version, shown by the CLI banner and
// version command. The blueprint file format version lives in
// pkg/blueprint.
var Version = "0.1.0"

// Setup is a ready-to-use registry plus the definitions it was loaded
// from, for presentation layers that want schemas and labels.
type Setup struct {
	Registry *blueprint.Registry
	Defs     []loader.Def
}

// Bootstrap builds a registry with the built-in actions and every
// definition found in the given extension directories. Directories are
// loaded in argument order, so later directories can override earlier
// definitions of the same name.
func Bootstrap(log *slog.Logger, extensionDirs ...string) (*Setup, error) {
	l := loader.New(log)

	if err := l.LoadBuiltins(); err != nil {
		return nil, fmt.Errorf("load builtin actions: %w", err)
	}
	for _, dir := range extensionDirs {
		if err := l.LoadDir(dir); err != nil {
			return nil, fmt.Errorf("load actions from %s: %w", dir, err)
		}
	}

	reg := blueprint.NewRegistry()
	if err := l.Register(reg); err != nil {
		return nil, err
	}

	return &Setup{Registry: reg, Defs: l.Defs()}, nil
}

// ReadDocument reads a blueprint document from a YAML or JSON file,
// chosen by extension.
func ReadDocument(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported blueprint file extension: %s", path)
	}
	return doc, nil
}

// LoadBlueprintFile reads a document file and rebuilds the blueprint.
func LoadBlueprintFile(reg *blueprint.Registry, path string) (*blueprint.Blueprint, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return blueprint.FromData(reg, doc)
}

// SaveBlueprintFile writes a blueprint document to path, YAML or JSON by
// extension.
func SaveBlueprintFile(b *blueprint.Blueprint, path string) error {
	doc := b.Serialize()

	var raw []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err = yaml.Marshal(doc)
	case ".json":
		raw, err = json.MarshalIndent(doc, "", "  ")
	default:
		return fmt.Errorf("unsupported blueprint file extension: %s", path)
	}
	if err != nil {
		return fmt.Errorf("encode blueprint: %w", err)
	}

	return os.WriteFile(path, raw, 0o644)
}
