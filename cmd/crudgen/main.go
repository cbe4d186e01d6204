package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/crudgen/internal/cli"
	"github.com/example/crudgen/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "crudgen",
		Short:   "crudgen - Laravel CRUD scaffolding",
		Version: version.String(),
		Long: `crudgen generates a Laravel CRUD stack (model, migration, repository,
service, controllers, form requests, Blade views and routes) from a model
name plus field and relationship declarations.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.MakeCmd())
	rootCmd.AddCommand(cli.PublishCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
