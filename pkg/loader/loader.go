package loader

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader collects action definitions from definition files and registers
// them into a registry. Populate once at session start.
type Loader struct {
	log     *slog.Logger
	defs    []Def
	runners map[string]RunFunc
}

// New creates an empty loader. A nil logger disables logging.
func New(log *slog.Logger) *Loader {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		log:     log,
		runners: make(map[string]RunFunc),
	}
}

// Defs returns the definitions collected so far, in load order.
func (l *Loader) Defs() []Def {
	defs := make([]Def, len(l.defs))
	copy(defs, l.defs)
	return defs
}

// Bind attaches a RunFunc to an action type name. Bindings apply to
// factories created by later Register calls.
func (l *Loader) Bind(name string, fn RunFunc) {
	l.runners[name] = fn
}

// LoadBuiltins loads the definitions shipped with the module.
func (l *Loader) LoadBuiltins() error {
	return l.loadFS(builtinFS, "builtin")
}

// LoadDir discovers and loads every *.yaml / *.yml definition in dir,
// walking subdirectories. Files are visited in lexical order so load
// order (and therefore last-wins registration) is deterministic.
func (l *Loader) LoadDir(dir string) error {
	return l.loadFS(os.DirFS(dir), ".")
}

func (l *Loader) loadFS(fsys fs.FS, root string) error {
	return fs.WalkDir(fsys, root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !isDefFile(path) {
			return nil
		}

		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read action definition %s: %w", path, err)
		}

		var def Def
		if err := yaml.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("parse action definition %s: %w", path, err)
		}
		if err := def.Check(); err != nil {
			return fmt.Errorf("action definition %s: %w", path, err)
		}

		l.log.Debug("loaded action definition", "name", def.Name, "path", path)
		l.defs = append(l.defs, def)
		return nil
	})
}

// Register installs a factory for every loaded definition. Runners bound
// via Bind are captured into their matching factories.
func (l *Loader) Register(reg *blueprint.Registry) error {
	factories := make([]blueprint.Factory, 0, len(l.defs))
	for _, def := range l.defs {
		def := def
		run := l.runners[def.Name]
		factories = append(factories, func() blueprint.Item {
			return NewDeclaredAction(def, run)
		})
	}
	return reg.Register(factories...)
}

func isDefFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
