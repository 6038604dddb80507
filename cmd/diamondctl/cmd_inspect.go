package main

import (
	"github.com/spf13/cobra"

	"diamond-price-service/internal/adapters/primary/console"
	"diamond-price-service/internal/core/domain"
)

func newInspectCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Report which codec can load the artifact, or why none can",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := console.NewRenderer(cmd.OutOrStdout(), !root.noColor)

			result, err := root.loadArtifact()
			if err != nil {
				return err
			}
			r.Status(result)

			if _, ok := result.(domain.Failed); ok {
				return errReported
			}
			return nil
		},
	}
}
