package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"qbrain-backend/internal/config"
	"qbrain-backend/pkg/container"
	"qbrain-backend/pkg/logger"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "qbrainctl",
	Short: "Admin tooling for the Qbrain backend",
	Long: `qbrainctl runs one-off admin tasks against the same store, blob
storage and mail settings the API uses (read from the environment or a .env file).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
		logger.Init("development")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before running")

	rootCmd.AddCommand(hashPasswordCmd, seedThemeCmd, exportApplicationsCmd, statsCmd)
}

// withContainer build container, chạy fn rồi cleanup
func withContainer(ctx context.Context, fn func(ctx context.Context, c *container.Container) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// container log ra stdout, giữ output của lệnh gọn
	log.SetOutput(io.Discard)
	c, err := container.Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Cleanup()

	return fn(ctx, c)
}
