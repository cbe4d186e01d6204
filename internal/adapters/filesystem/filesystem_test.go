package filesystem_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/crudgen/internal/adapters/filesystem"
)

func TestOSFileSystem_DirectoryOperations(t *testing.T) {
	tmpDir := t.TempDir()
	adapter := filesystem.NewOSFileSystem()
	ctx := context.Background()

	testDir := filepath.Join(tmpDir, "app", "Models")

	// Directory should not exist initially
	exists, err := adapter.Exists(ctx, testDir)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected directory to not exist")
	}

	// Create directory
	if err := adapter.MkdirAll(ctx, testDir); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	// Directory should exist now
	exists, err = adapter.Exists(ctx, testDir)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected directory to exist")
	}
}

func TestOSFileSystem_WriteAndRead(t *testing.T) {
	adapter := filesystem.NewOSFileSystem()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "Post.php")

	if err := adapter.WriteFile(ctx, path, []byte("first")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	// Second write overwrites
	if err := adapter.WriteFile(ctx, path, []byte("second")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := adapter.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("expected %q, got %q", "second", string(data))
	}
}

func TestOSFileSystem_ReadMissingFile(t *testing.T) {
	adapter := filesystem.NewOSFileSystem()

	_, err := adapter.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.stub"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestOSFileSystem_AppendFile(t *testing.T) {
	adapter := filesystem.NewOSFileSystem()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "web.php")

	if err := os.WriteFile(path, []byte("<?php\n"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	if err := adapter.AppendFile(ctx, path, []byte("Route::resource('post');\n")); err != nil {
		t.Fatalf("AppendFile failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "<?php\nRoute::resource('post');\n" {
		t.Errorf("unexpected content %q", string(data))
	}
}

func TestOSFileSystem_AppendMissingFile(t *testing.T) {
	adapter := filesystem.NewOSFileSystem()
	path := filepath.Join(t.TempDir(), "api.php")

	if err := adapter.AppendFile(context.Background(), path, []byte("x")); err == nil {
		t.Error("expected error appending to missing file")
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected append not to create the file")
	}
}
