// Package cli implements the registry command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/registry-backend/internal/app"
	"github.com/heartmarshall/registry-backend/internal/config"
)

// RootCmd returns the root command with all subcommands attached.
func RootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "registry",
		Short:   "Organization registry and incident tracker",
		Version: app.BuildVersion(),
		Long: `registry runs the organization registry and incident tracker HTTP
services and manages their PostgreSQL schema.

Configuration is read from --config, then CONFIG_PATH, then ./config.yaml;
environment variables override the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	load := func() (*config.Config, *slog.Logger, error) {
		path := configPath
		if path == "" {
			path = os.Getenv("CONFIG_PATH")
		}
		cfg, err := config.LoadFrom(path)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, app.NewLogger(cfg.Log), nil
	}

	cmd.AddCommand(serveCmd(load))
	cmd.AddCommand(migrateCmd(load))
	cmd.AddCommand(seedCmd(load))

	return cmd
}

// loader reads configuration and builds the process logger.
type loader func() (*config.Config, *slog.Logger, error)
