package cli

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/crudgen/internal/config"
	"github.com/example/crudgen/internal/ports/primary"
	"github.com/example/crudgen/internal/wire"
)

var makeCmd = &cobra.Command{
	Use:   "make [name]",
	Short: "Generate a complete Laravel CRUD stack for a model",
	Long: `Generate every file of a CRUD stack for one model:
  - Model and shared BaseModel (app/Models/)
  - Migration (database/migrations/)
  - Repository interface and implementation (app/Repositories/)
  - Service (app/Services/)
  - Web and API controllers (app/Http/Controllers/)
  - Store and update form requests (app/Http/Requests/)
  - Blade views and shared layout (resources/views/)
  - Resource routes appended to routes/web.php and routes/api.php

Field types: string, text, integer, decimal, boolean, date, datetime, timestamp, json, email
Relation kinds: hasMany, hasOne, belongsTo, belongsToMany, morphMany, morphOne, morphTo

Examples:
  crudgen make Post --fields "title:string,body:text,views:integer"
  crudgen make Post --fields "title:string" --relations "belongsTo:Category,hasMany:Comment"
  crudgen make Post --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		fields, _ := cmd.Flags().GetString("fields")
		relations, _ := cmd.Flags().GetString("relations")
		sample, _ := cmd.Flags().GetBool("sample")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		strict, _ := cmd.Flags().GetBool("strict")

		root, cfg, err := loadProjectConfig(cmd)
		if err != nil {
			return err
		}

		return wire.ScaffoldAdapter().Make(ctx, primary.GenerateRequest{
			Name:      args[0],
			Fields:    fields,
			Relations: relations,
			Sample:    sample,
			DryRun:    dryRun,
			Strict:    strict,
			Root:      root,
			Config:    cfg,
		})
	},
}

func init() {
	makeCmd.Flags().StringP("fields", "f", "", "Field specifications (e.g., 'title:string,views:integer')")
	makeCmd.Flags().StringP("relations", "r", "", "Relationships (e.g., 'belongsTo:Category,hasMany:Comment')")
	makeCmd.Flags().Bool("sample", false, "Request sample records (accepted, not generated)")
	makeCmd.Flags().Bool("dry-run", false, "Preview without writing files")
	makeCmd.Flags().Bool("strict", false, "Fail when a field or relation entry is malformed")
	addProjectFlags(makeCmd)
}

// MakeCmd returns the make command
func MakeCmd() *cobra.Command {
	return makeCmd
}

// addProjectFlags registers the flags shared by every command that works on
// a project tree.
func addProjectFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("path", "p", ".", "Project root")
	cmd.Flags().String("config", "", "Config file (default <path>/"+config.DefaultFile+")")
	cmd.Flags().BoolP("verbose", "v", false, "Log every artifact")
}

// loadProjectConfig resolves the project root and loads its config.
func loadProjectConfig(cmd *cobra.Command) (string, *config.Config, error) {
	root, _ := cmd.Flags().GetString("path")
	cfgPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		wire.LogLevel.Set(slog.LevelDebug)
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return "", nil, err
	}
	if cfgPath == "" {
		cfgPath = filepath.Join(root, config.DefaultFile)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return "", nil, err
	}
	wire.Logger().Debug("loaded config", "path", cfgPath, "namespace", cfg.Namespace)

	return root, cfg, nil
}
