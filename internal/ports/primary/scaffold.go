package primary

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/crudgen/internal/config"
)

// ScaffoldService defines the primary port for CRUD generation.
type ScaffoldService interface {
	// Generate resolves a model declaration and emits its CRUD stack.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Publish writes the default config file and copies the built-in stubs
	// into the project's stub override directory.
	Publish(ctx context.Context, req PublishRequest) (*PublishResponse, error)
}

// GenerateRequest contains parameters for a generation pass.
type GenerateRequest struct {
	Name      string
	Fields    string // "title:string,views:integer"
	Relations string // "hasMany:Comment,belongsTo:User"
	Sample    bool
	DryRun    bool
	Strict    bool // fail on dropped field/relation entries
	Root      string
	Config    *config.Config
}

// ArtifactStatus is the outcome of emitting one artifact.
type ArtifactStatus string

const (
	StatusCreated  ArtifactStatus = "created"
	StatusSkipped  ArtifactStatus = "skipped"  // shared artifact already present
	StatusAppended ArtifactStatus = "appended" // route snippet added
	StatusMissing  ArtifactStatus = "missing"  // route file absent, nothing written
	StatusPlanned  ArtifactStatus = "planned"  // dry run
)

// Artifact is one generated file at the port boundary.
type Artifact struct {
	Kind    string
	Path    string
	Status  ArtifactStatus
	Content string
}

// Diagnostic describes a dropped declaration entry.
type Diagnostic struct {
	Option string
	Index  int
	Raw    string
	Reason string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("--%s entry %d %q: %s", d.Option, d.Index, d.Raw, d.Reason)
}

// GenerateResponse contains the result of a generation pass. On failure it
// lists whatever was emitted before the error.
type GenerateResponse struct {
	ModelName       string
	TableName       string
	Artifacts       []Artifact
	Diagnostics     []Diagnostic
	DefaultedFields bool
	Sample          bool
	DryRun          bool
	NextSteps       []string
}

// ValidationError is returned in strict mode when entries were dropped.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		lines[i] = d.String()
	}
	return fmt.Sprintf("%d invalid declaration entr%s:\n  %s",
		len(e.Diagnostics), pluralSuffix(len(e.Diagnostics)), strings.Join(lines, "\n  "))
}

func pluralSuffix(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

// PublishRequest contains parameters for publishing config and stubs.
type PublishRequest struct {
	Root       string
	ConfigPath string // relative to Root
	Force      bool   // overwrite existing files
	Config     *config.Config
}

// PublishResponse lists what was written or kept.
type PublishResponse struct {
	Artifacts []Artifact
}
