package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/example/crudgen/internal/config"
	"github.com/example/crudgen/internal/ports/primary"
	"github.com/example/crudgen/internal/ports/secondary"
	"github.com/example/crudgen/internal/scaffold"
	scaffoldtmpl "github.com/example/crudgen/internal/templates/scaffold"
)

// ScaffoldServiceImpl implements the ScaffoldService interface.
type ScaffoldServiceImpl struct {
	fs     secondary.FileSystem
	logger *slog.Logger
	now    func() time.Time
}

// NewScaffoldService creates a new ScaffoldService with injected dependencies.
func NewScaffoldService(fs secondary.FileSystem, logger *slog.Logger, now func() time.Time) *ScaffoldServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &ScaffoldServiceImpl{
		fs:     fs,
		logger: logger,
		now:    now,
	}
}

// Generate resolves the declaration and emits every artifact of the stack.
// Files are written in emission order; on error the response lists what was
// already written and nothing is rolled back.
func (s *ScaffoldServiceImpl) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
	cfg := req.Config
	if cfg == nil {
		cfg = config.Default()
	}

	spec, err := scaffold.Resolve(req.Name, req.Fields, req.Relations)
	if err != nil {
		return nil, err
	}

	resp := &primary.GenerateResponse{
		ModelName:       spec.Names.Studly,
		TableName:       spec.Names.Table,
		Diagnostics:     toPortDiagnostics(spec.Diagnostics),
		DefaultedFields: spec.DefaultedFields,
		Sample:          req.Sample,
		DryRun:          req.DryRun,
	}

	for _, d := range spec.Diagnostics {
		s.logger.Warn("dropped declaration entry",
			"option", d.Option, "index", d.Index, "raw", d.Raw, "reason", d.Reason)
	}
	if req.Strict && len(spec.Diagnostics) > 0 {
		return resp, &primary.ValidationError{Diagnostics: resp.Diagnostics}
	}
	if req.Sample {
		s.logger.Info("sample records are not generated; --sample has no effect", "model", spec.Names.Studly)
	}

	stubs := scaffoldtmpl.NewStore(config.Resolve(req.Root, cfg.StubsPath), func(name string) ([]byte, error) {
		return s.fs.ReadFile(ctx, name)
	})
	gen := scaffold.NewGenerator(stubs, cfg)

	result, err := gen.Generate(spec, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", spec.Names.Studly, err)
	}
	resp.NextSteps = result.NextSteps

	for _, f := range result.Files {
		if err := ctx.Err(); err != nil {
			return resp, err
		}

		status, err := s.emit(ctx, req.Root, f, req.DryRun)
		if err != nil {
			return resp, fmt.Errorf("failed to write %s: %w", f.Path, err)
		}

		s.logger.Debug("artifact", "kind", f.Kind, "path", f.Path, "status", status)
		resp.Artifacts = append(resp.Artifacts, primary.Artifact{
			Kind:    f.Kind,
			Path:    f.Path,
			Status:  status,
			Content: f.Content,
		})
	}

	s.logger.Info("generated CRUD stack",
		"model", spec.Names.Studly,
		"table", spec.Names.Table,
		"artifacts", len(resp.Artifacts),
		"dry_run", req.DryRun)

	return resp, nil
}

// emit applies the operation of f under root.
func (s *ScaffoldServiceImpl) emit(ctx context.Context, root string, f scaffold.GeneratedFile, dryRun bool) (primary.ArtifactStatus, error) {
	target := config.Resolve(root, f.Path)

	switch f.Operation {
	case scaffold.OpCreateOnce:
		exists, err := s.fs.Exists(ctx, target)
		if err != nil {
			return "", err
		}
		if exists {
			return primary.StatusSkipped, nil
		}

	case scaffold.OpAppend:
		exists, err := s.fs.Exists(ctx, target)
		if err != nil {
			return "", err
		}
		if !exists {
			return primary.StatusMissing, nil
		}
		if dryRun {
			return primary.StatusPlanned, nil
		}
		if err := s.fs.AppendFile(ctx, target, []byte(f.Content)); err != nil {
			return "", err
		}
		return primary.StatusAppended, nil
	}

	if dryRun {
		return primary.StatusPlanned, nil
	}
	if err := s.fs.MkdirAll(ctx, filepath.Dir(target)); err != nil {
		return "", err
	}
	if err := s.fs.WriteFile(ctx, target, []byte(f.Content)); err != nil {
		return "", err
	}
	return primary.StatusCreated, nil
}

// Publish writes the config file and copies the built-in stubs into the
// override directory. Existing files are kept unless Force is set.
func (s *ScaffoldServiceImpl) Publish(ctx context.Context, req primary.PublishRequest) (*primary.PublishResponse, error) {
	cfg := req.Config
	if cfg == nil {
		cfg = config.Default()
	}
	configPath := req.ConfigPath
	if configPath == "" {
		configPath = config.DefaultFile
	}

	resp := &primary.PublishResponse{}

	data, err := config.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	status, err := s.publishFile(ctx, config.Resolve(req.Root, configPath), data, req.Force)
	if err != nil {
		return resp, fmt.Errorf("failed to publish config: %w", err)
	}
	resp.Artifacts = append(resp.Artifacts, primary.Artifact{Kind: "config", Path: configPath, Status: status})

	ids, err := scaffoldtmpl.IDs()
	if err != nil {
		return resp, fmt.Errorf("failed to list stubs: %w", err)
	}

	stubsDir := config.Resolve(req.Root, cfg.StubsPath)
	for _, id := range ids {
		content, err := scaffoldtmpl.GetEmbedded(id)
		if err != nil {
			return resp, err
		}

		rel := filepath.Join(cfg.StubsPath, filepath.FromSlash(id)+".stub")
		status, err := s.publishFile(ctx, filepath.Join(stubsDir, filepath.FromSlash(id)+".stub"), []byte(content), req.Force)
		if err != nil {
			return resp, fmt.Errorf("failed to publish stub %s: %w", id, err)
		}
		resp.Artifacts = append(resp.Artifacts, primary.Artifact{Kind: "stub", Path: rel, Status: status})
	}

	s.logger.Info("published stubs", "dir", stubsDir, "count", len(ids), "force", req.Force)
	return resp, nil
}

func (s *ScaffoldServiceImpl) publishFile(ctx context.Context, target string, data []byte, force bool) (primary.ArtifactStatus, error) {
	if !force {
		exists, err := s.fs.Exists(ctx, target)
		if err != nil {
			return "", err
		}
		if exists {
			return primary.StatusSkipped, nil
		}
	}

	if err := s.fs.MkdirAll(ctx, filepath.Dir(target)); err != nil {
		return "", err
	}
	if err := s.fs.WriteFile(ctx, target, data); err != nil {
		return "", err
	}
	return primary.StatusCreated, nil
}

func toPortDiagnostics(diags []scaffold.Diagnostic) []primary.Diagnostic {
	out := make([]primary.Diagnostic, len(diags))
	for i, d := range diags {
		out[i] = primary.Diagnostic{
			Option: d.Option,
			Index:  d.Index,
			Raw:    d.Raw,
			Reason: d.Reason,
		}
	}
	return out
}

// Ensure ScaffoldServiceImpl implements the interface
var _ primary.ScaffoldService = (*ScaffoldServiceImpl)(nil)
