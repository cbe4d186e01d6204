// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// generation to services.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/crudgen/internal/ports/primary"
)

var (
	createdColor  = color.New(color.FgGreen)
	skippedColor  = color.New(color.FgYellow)
	appendedColor = color.New(color.FgCyan)
	warnColor     = color.New(color.FgYellow, color.Bold)
	headerColor   = color.New(color.Bold)
)

// ScaffoldAdapter translates CLI operations to ScaffoldService calls.
type ScaffoldAdapter struct {
	service primary.ScaffoldService
	out     io.Writer
}

// NewScaffoldAdapter creates a new ScaffoldAdapter with the given service.
func NewScaffoldAdapter(service primary.ScaffoldService, out io.Writer) *ScaffoldAdapter {
	return &ScaffoldAdapter{
		service: service,
		out:     out,
	}
}

// Make generates the CRUD stack for one model and prints the report.
func (a *ScaffoldAdapter) Make(ctx context.Context, req primary.GenerateRequest) error {
	resp, err := a.service.Generate(ctx, req)

	var verr *primary.ValidationError
	if errors.As(err, &verr) {
		a.printDiagnostics(verr.Diagnostics)
		return err
	}
	if resp != nil && len(resp.Artifacts) > 0 {
		a.printReport(resp)
	}
	if err != nil {
		return err
	}

	if len(resp.Diagnostics) > 0 {
		a.printDiagnostics(resp.Diagnostics)
	}
	if resp.DefaultedFields {
		warnColor.Fprintln(a.out, "⚠ No valid fields given, using name:string,email:string,description:text")
	}
	if resp.Sample {
		warnColor.Fprintln(a.out, "⚠ --sample is accepted but no sample records are generated")
	}

	if resp.DryRun {
		fmt.Fprintln(a.out, "(dry-run mode - no files written)")
		fmt.Fprintln(a.out)
		for _, f := range resp.Artifacts {
			fmt.Fprintf(a.out, "--- %s ---\n", f.Path)
			fmt.Fprintln(a.out, f.Content)
			fmt.Fprintln(a.out)
		}
		return nil
	}

	fmt.Fprintf(a.out, "\n✓ CRUD for %s generated successfully\n", resp.ModelName)
	if len(resp.NextSteps) > 0 {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Next steps:")
		for i, step := range resp.NextSteps {
			fmt.Fprintf(a.out, "  %d. %s\n", i+1, step)
		}
	}

	return nil
}

// Publish writes the config file and stub copies and prints what happened.
func (a *ScaffoldAdapter) Publish(ctx context.Context, req primary.PublishRequest) error {
	resp, err := a.service.Publish(ctx, req)
	if resp != nil {
		a.printArtifacts(resp.Artifacts)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Edit the published stubs to customize generated code.")
	if !req.Force {
		fmt.Fprintln(a.out, "Existing files were kept; use --force to overwrite them.")
	}
	return nil
}

func (a *ScaffoldAdapter) printReport(resp *primary.GenerateResponse) {
	headerColor.Fprintf(a.out, "Generating CRUD for %s (table %s)\n\n", resp.ModelName, resp.TableName)
	a.printArtifacts(resp.Artifacts)
}

func (a *ScaffoldAdapter) printArtifacts(artifacts []primary.Artifact) {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, f := range artifacts {
		fmt.Fprintf(w, "  %s\t%s\n", statusLabel(f.Status), f.Path)
	}
	w.Flush()
}

func (a *ScaffoldAdapter) printDiagnostics(diags []primary.Diagnostic) {
	fmt.Fprintln(a.out)
	warnColor.Fprintf(a.out, "⚠ Ignored %d invalid entr%s:\n", len(diags), entrySuffix(len(diags)))
	for _, d := range diags {
		fmt.Fprintf(a.out, "    %s\n", d)
	}
}

func statusLabel(status primary.ArtifactStatus) string {
	switch status {
	case primary.StatusCreated:
		return createdColor.Sprint("✓ Created")
	case primary.StatusAppended:
		return appendedColor.Sprint("+ Appended")
	case primary.StatusSkipped:
		return skippedColor.Sprint("- Skipped (exists)")
	case primary.StatusMissing:
		return skippedColor.Sprint("! Missing, add manually")
	case primary.StatusPlanned:
		return "• Would write"
	default:
		return string(status)
	}
}

func entrySuffix(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
