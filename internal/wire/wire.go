// Package wire provides dependency injection for the crudgen application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	cliadapter "github.com/example/crudgen/internal/adapters/cli"
	"github.com/example/crudgen/internal/adapters/filesystem"
	"github.com/example/crudgen/internal/app"
	"github.com/example/crudgen/internal/ports/primary"
)

// LogLevel controls the level of the shared logger. Commands raise it to
// debug for --verbose.
var LogLevel = new(slog.LevelVar)

var (
	scaffoldService primary.ScaffoldService
	logger          *slog.Logger
	once            sync.Once
)

func init() {
	LogLevel.Set(slog.LevelWarn)
}

// ScaffoldService returns the singleton ScaffoldService instance.
func ScaffoldService() primary.ScaffoldService {
	once.Do(initServices)
	return scaffoldService
}

// Logger returns the shared structured logger.
func Logger() *slog.Logger {
	once.Do(initServices)
	return logger
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LogLevel}))

	fs := filesystem.NewOSFileSystem()
	scaffoldService = app.NewScaffoldService(fs, logger, time.Now)
}

// ScaffoldAdapter returns a new ScaffoldAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ScaffoldAdapter() *cliadapter.ScaffoldAdapter {
	return ScaffoldAdapterWithOutput(os.Stdout)
}

// ScaffoldAdapterWithOutput returns a new ScaffoldAdapter writing to the given output.
func ScaffoldAdapterWithOutput(out io.Writer) *cliadapter.ScaffoldAdapter {
	once.Do(initServices)
	return cliadapter.NewScaffoldAdapter(scaffoldService, out)
}
