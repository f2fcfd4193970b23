package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"qbrain-backend/pkg/container"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print collection counts as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd.Context(), func(ctx context.Context, c *container.Container) error {
			st, err := c.DashboardService.Stats(ctx)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(st)
		})
	},
}
