// Package checkpoint persists run progress as pretty-printed JSON files, one
// per roster. The whole collection is rewritten after each processed person;
// a crashed run reloads the file and skips everyone already resolved.
package checkpoint

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes checkpoint files under a single directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("checkpoint dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the file a named checkpoint lives in.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Names lists the checkpoints present in the store.
func (s *Store) Names() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, e.Name()[:len(e.Name())-len(".json")])
	}
	return names, nil
}

// Save serializes v and replaces the named checkpoint. The write goes to a
// temporary file first and is renamed into place, so an interrupted run never
// leaves a truncated checkpoint behind.
func (s *Store) Save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("checkpoint %s: marshal: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("checkpoint %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("checkpoint %s: write: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("checkpoint %s: close: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.Path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("checkpoint %s: rename: %w", name, err)
	}
	return nil
}

// Load reads the named checkpoint into v. A missing file is returned as the
// underlying not-exist error so callers can treat it as a fresh start.
func (s *Store) Load(name string, v any) error {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("checkpoint %s: unmarshal: %w", name, err)
	}
	return nil
}
