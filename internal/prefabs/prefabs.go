// Package prefabs loads hand-authored level fragments from YAML files.
// A built-in vault is embedded in the binary; a directory on disk can add
// fragments or replace built-in ones by name.
// This package depends on level but level does not depend on prefabs.
package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-dungeon/internal/level"
)

//go:embed vault/*.yaml
var vaultFS embed.FS

// DefaultName is the fragment stamped when no selection is configured.
const DefaultName = "fortress"

// YAMLPrefab is the on-disk form of a fragment.
type YAMLPrefab struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Map         string `yaml:"map"` // Block of rows, one per line
}

// Entry is a loaded fragment plus its metadata.
type Entry struct {
	Prefab      level.Prefab
	Description string
	Path        string
}

// Parse decodes a YAML fragment.
func Parse(data []byte) (Entry, error) {
	var yp YAMLPrefab
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Entry{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	name := strings.TrimSpace(yp.Name)
	if name == "" {
		return Entry{}, fmt.Errorf("prefab has no name")
	}

	rows := strings.Split(strings.TrimRight(yp.Map, "\n"), "\n")
	for i, row := range rows {
		rows[i] = strings.TrimRight(row, "\r")
	}

	pf, err := level.NewPrefab(name, rows)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Prefab: pf, Description: yp.Description}, nil
}

// Loader reads fragments from a file system.
type Loader struct {
	FS fs.FS
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys}
}

// NewDirLoader creates a loader over a directory on disk.
func NewDirLoader(root string) *Loader {
	return NewLoader(os.DirFS(root))
}

// Builtin returns a loader over the embedded vault.
func Builtin() *Loader {
	sub, err := fs.Sub(vaultFS, "vault")
	if err != nil {
		// vault is a literal embed pattern; Sub cannot fail.
		panic(err)
	}
	return NewLoader(sub)
}

// LoadAll recursively loads every YAML fragment.
// Returns entries sorted by name for deterministic ordering.
func (l *Loader) LoadAll() ([]Entry, error) {
	var entries []Entry

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		entry, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading prefabs: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Prefab.Name < entries[j].Prefab.Name
	})
	return entries, nil
}

// LoadFile loads a single fragment.
func (l *Loader) LoadFile(p string) (Entry, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Entry{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	entry, err := Parse(data)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	entry.Path = p
	return entry, nil
}

// LoadByName loads the fragment with the given name.
func (l *Loader) LoadByName(name string) (Entry, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.Prefab.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("prefab not found: %s", name)
}

// Load returns the built-in vault merged with the fragments under dir.
// Fragments on disk replace built-in ones with the same name. An empty dir
// returns the built-in vault.
func Load(dir string) ([]Entry, error) {
	builtin, err := Builtin().LoadAll()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return builtin, nil
	}

	custom, err := NewDirLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]Entry, len(builtin)+len(custom))
	for _, e := range builtin {
		byName[e.Prefab.Name] = e
	}
	for _, e := range custom {
		byName[e.Prefab.Name] = e
	}

	merged := make([]Entry, 0, len(byName))
	for _, e := range byName {
		merged = append(merged, e)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Prefab.Name < merged[j].Prefab.Name
	})
	return merged, nil
}

// Select picks the named fragments in the order given.
// An empty selection returns every entry.
func Select(entries []Entry, names []string) ([]level.Prefab, error) {
	if len(names) == 0 {
		out := make([]level.Prefab, len(entries))
		for i, e := range entries {
			out[i] = e.Prefab
		}
		return out, nil
	}

	out := make([]level.Prefab, 0, len(names))
	for _, name := range names {
		found := false
		for _, e := range entries {
			if e.Prefab.Name == name {
				out = append(out, e.Prefab)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("prefab not found: %s", name)
		}
	}
	return out, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
