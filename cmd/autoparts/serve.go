package main

import (
	"github.com/spf13/cobra"

	"github.com/you-humble/autoparts/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and start the HTTP API and the payment consumer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := app.New(ctx)
			if err != nil {
				return err
			}

			return a.Run(ctx)
		},
	}
}
