package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qbrain-backend/internal/domains/application/model"
	"qbrain-backend/pkg/container"
)

var (
	exportOut    string
	exportStatus string
)

var exportApplicationsCmd = &cobra.Command{
	Use:   "export-applications",
	Short: "Export applications to an XLSX file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportStatus != "" && !model.IsValidStatus(exportStatus) {
			return fmt.Errorf("unknown status %q", exportStatus)
		}
		return withContainer(cmd.Context(), func(ctx context.Context, c *container.Container) error {
			data, err := c.ApplicationService.Export(ctx, exportStatus)
			if err != nil {
				return err
			}
			if err := os.WriteFile(exportOut, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", exportOut, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", exportOut, len(data))
			return nil
		})
	},
}

func init() {
	exportApplicationsCmd.Flags().StringVarP(&exportOut, "out", "o", "applications.xlsx", "output file")
	exportApplicationsCmd.Flags().StringVar(&exportStatus, "status", "", "only export applications with this status")
}
