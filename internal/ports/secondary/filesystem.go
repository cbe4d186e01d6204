// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// FileSystem defines the secondary port for reading and writing generated files.
// Paths are passed through unchanged; callers resolve them against the project root.
type FileSystem interface {
	// Exists reports whether a file or directory exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// MkdirAll creates a directory with all parent directories.
	MkdirAll(ctx context.Context, path string) error

	// WriteFile creates or truncates path and writes data.
	WriteFile(ctx context.Context, path string, data []byte) error

	// AppendFile appends data to an existing file. It fails if path does not exist.
	AppendFile(ctx context.Context, path string, data []byte) error

	// ReadFile returns the contents of path. Missing files yield an error
	// matching fs.ErrNotExist.
	ReadFile(ctx context.Context, path string) ([]byte, error)
}
