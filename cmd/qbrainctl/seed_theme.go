package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"qbrain-backend/internal/domains/theme/model"
	"qbrain-backend/pkg/container"
)

var seedThemeForce bool

var seedThemeCmd = &cobra.Command{
	Use:   "seed-theme",
	Short: "Store the default theme in settings/theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd.Context(), func(ctx context.Context, c *container.Container) error {
			_, err := c.ThemeRepo.Get(ctx)
			switch {
			case err == nil && !seedThemeForce:
				fmt.Fprintln(cmd.OutOrStdout(), "theme already exists, use --force to overwrite")
				return nil
			case err != nil && !errors.Is(err, model.ErrThemeNotFound):
				return fmt.Errorf("load theme: %w", err)
			}

			if _, err := c.ThemeService.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "default theme stored")
			return nil
		})
	},
}

func init() {
	seedThemeCmd.Flags().BoolVar(&seedThemeForce, "force", false, "overwrite an existing theme")
}
