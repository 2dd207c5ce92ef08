package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/registry-backend/internal/app"
)

func serveCmd(load loader) *cobra.Command {
	var service string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP services",
		Long: `Run the registry service, the incidents service or both in one
process. Both share one connection pool and stop gracefully on SIGINT or SIGTERM.

Examples:
  registry serve
  registry serve --service incidents`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			return a.Serve(ctx, service)
		},
	}
	cmd.Flags().StringVar(&service, "service", app.ServiceAll, "service to run: registry, incidents or all")

	return cmd
}
