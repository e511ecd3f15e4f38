package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-humble/autoparts/internal/app"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample parts catalog into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := app.NewTool(ctx)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			n, err := a.Seed(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d parts\n", n)
			return nil
		},
	}
}
