// Package confkit holds the conventions shared by this service's config
// files: per-concern section files referenced from the main YAML, and
// one-shot .env loading.
package confkit

import (
	"os"
	"path/filepath"
)

// Section points at an optional per-concern config file (llm, generator,
// render). The main config carries only the File reference; Hydrate fills
// Value from disk. A Section with no File stays empty and the owning
// component falls back to its defaults.
type Section[T any] struct {
	File  string `json:",optional"`
	Value *T     `json:"-"`
}

// Hydrate parses the referenced file with load and stores the result in
// Value. File is resolved against the main config's directory so a
// deployment can move as one unit; ${VAR} references in it are expanded
// first and absolute paths pass through. A no-op when File is empty.
func (s *Section[T]) Hydrate(mainDir string, load func(string) (*T, error)) error {
	if s.File == "" {
		return nil
	}
	path := os.ExpandEnv(s.File)
	if !filepath.IsAbs(path) {
		path = filepath.Join(mainDir, path)
	}
	v, err := load(path)
	if err != nil {
		return err
	}
	s.File, s.Value = path, v
	return nil
}
