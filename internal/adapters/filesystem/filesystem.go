// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"

	"github.com/example/crudgen/internal/ports/secondary"
)

// OSFileSystem implements secondary.FileSystem on top of the os package.
type OSFileSystem struct {
	dirMode  os.FileMode
	fileMode os.FileMode
}

// NewOSFileSystem creates a new OS-backed filesystem adapter.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{dirMode: 0755, fileMode: 0644}
}

// Exists checks if a file or directory exists at the given path.
func (a *OSFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return true, nil
}

// MkdirAll creates a directory with all parent directories.
func (a *OSFileSystem) MkdirAll(ctx context.Context, path string) error {
	if err := os.MkdirAll(path, a.dirMode); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// WriteFile writes data to path, truncating any existing content.
func (a *OSFileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := os.WriteFile(path, data, a.fileMode); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// AppendFile appends data to an existing file.
func (a *OSFileSystem) AppendFile(ctx context.Context, path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, a.fileMode)
	if err != nil {
		return fmt.Errorf("failed to open file for append: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to file: %w", err)
	}

	return f.Close()
}

// ReadFile reads the whole file at path.
func (a *OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// Ensure OSFileSystem implements the interface
var _ secondary.FileSystem = (*OSFileSystem)(nil)
