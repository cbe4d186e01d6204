// Package scaffold provides the stub templates for CRUD generation.
//
// Stubs are embedded in the binary. A project may override any of them by
// placing a file with the same relative name under its stubs directory
// (see "crudgen publish").
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

const stubExt = ".stub"

//go:embed stubs
var embedded embed.FS

// ReadFileFunc reads an override stub from disk.
type ReadFileFunc func(name string) ([]byte, error)

// Store resolves stub ids against an optional override directory first and
// the embedded set second.
type Store struct {
	overrideDir string
	readFile    ReadFileFunc
}

// NewStore creates a Store. With an empty overrideDir or nil readFile only
// embedded stubs are served.
func NewStore(overrideDir string, readFile ReadFileFunc) *Store {
	return &Store{overrideDir: overrideDir, readFile: readFile}
}

// Get returns the stub content for id ("model", "views/index", ...).
func (s *Store) Get(id string) (string, error) {
	if s.overrideDir != "" && s.readFile != nil {
		content, err := s.readFile(path.Join(s.overrideDir, id+stubExt))
		if err == nil {
			return string(content), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to read override stub %s: %w", id, err)
		}
	}

	return GetEmbedded(id)
}

// GetEmbedded returns the built-in stub for id.
func GetEmbedded(id string) (string, error) {
	content, err := embedded.ReadFile("stubs/" + id + stubExt)
	if err != nil {
		return "", fmt.Errorf("unknown stub %q: %w", id, err)
	}
	return string(content), nil
}

// IDs lists every embedded stub id in sorted order.
func IDs() ([]string, error) {
	var ids []string
	err := fs.WalkDir(embedded, "stubs", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, stubExt) {
			return nil
		}
		ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(p, "stubs/"), stubExt))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}
