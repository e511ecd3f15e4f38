package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autoparts",
		Short: "Auto parts inventory and invoicing service",
		Long: `autoparts keeps the parts catalog with its stock movements and issues
invoices that draw stock from it.

Configuration is read from the environment. With APP_ENV=local a .env file
in the working directory is loaded first.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
	)

	return cmd
}
