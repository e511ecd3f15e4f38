package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-humble/autoparts/internal/app"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx := cmd.Context()

				a, err := app.NewTool(ctx)
				if err != nil {
					return err
				}
				defer a.Close(ctx)

				return a.MigrateUp(ctx)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx := cmd.Context()

				a, err := app.NewTool(ctx)
				if err != nil {
					return err
				}
				defer a.Close(ctx)

				return a.MigrateDown(ctx)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx := cmd.Context()

				a, err := app.NewTool(ctx)
				if err != nil {
					return err
				}
				defer a.Close(ctx)

				v, err := a.MigrationVersion(ctx)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			},
		},
	)

	return cmd
}
