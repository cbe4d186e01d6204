package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/crudgen/internal/ports/primary"
	"github.com/example/crudgen/internal/wire"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the config file and stubs for customization",
	Long: `Write .crudgen/config.yaml and copy every built-in stub into the
project's stub directory (stubs/crud-generator by default). Stubs found
there take precedence over the built-in ones on the next make.

Examples:
  crudgen publish
  crudgen publish --path ../shop --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		force, _ := cmd.Flags().GetBool("force")
		cfgPath, _ := cmd.Flags().GetString("config")

		root, cfg, err := loadProjectConfig(cmd)
		if err != nil {
			return err
		}
		if cfgPath != "" {
			if cfgPath, err = filepath.Abs(cfgPath); err != nil {
				return err
			}
		}

		return wire.ScaffoldAdapter().Publish(ctx, primary.PublishRequest{
			Root:       root,
			ConfigPath: cfgPath,
			Force:      force,
			Config:     cfg,
		})
	},
}

func init() {
	publishCmd.Flags().Bool("force", false, "Overwrite existing files")
	addProjectFlags(publishCmd)
}

// PublishCmd returns the publish command
func PublishCmd() *cobra.Command {
	return publishCmd
}
