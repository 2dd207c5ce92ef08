package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/registry-backend/internal/adapter/postgres"
)

const migrateTimeout = 5 * time.Minute

func migrateCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	run := func(fn func(ctx context.Context, m *postgres.Migrator, out io.Writer) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, _, err := load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()

			m, err := postgres.NewMigrator(ctx, cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer m.Close()

			return fn(ctx, m, cmd.OutOrStdout())
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, m *postgres.Migrator, out io.Writer) error {
			results, err := m.Up(ctx)
			printResults(out, results)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintln(out, "schema is up to date")
			}
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, m *postgres.Migrator, out io.Writer) error {
			result, err := m.Down(ctx)
			if result != nil {
				printResults(out, []*goose.MigrationResult{result})
			}
			return err
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, m *postgres.Migrator, out io.Writer) error {
			statuses, err := m.Status(ctx)
			if err != nil {
				return err
			}
			printStatus(out, statuses)
			return nil
		}),
	})

	return cmd
}

func printResults(out io.Writer, results []*goose.MigrationResult) {
	for _, r := range results {
		if r == nil || r.Source == nil {
			continue
		}
		mark := color.New(color.FgGreen).Sprint("OK  ")
		if r.Error != nil {
			mark = color.New(color.FgRed).Sprint("FAIL")
		}
		fmt.Fprintf(out, "%s %s %05d %s (%s)\n", mark, r.Direction, r.Source.Version, r.Source.Path, r.Duration.Round(time.Millisecond))
	}
}

func printStatus(out io.Writer, statuses []*goose.MigrationStatus) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, s := range statuses {
		state := color.New(color.FgYellow).Sprint("pending")
		applied := "-"
		if s.State == goose.StateApplied {
			state = color.New(color.FgGreen).Sprint("applied")
			applied = s.AppliedAt.Format(time.DateTime)
		}
		fmt.Fprintf(w, "%05d\t%s\t%s\t%s\n", s.Source.Version, state, applied, s.Source.Path)
	}
	w.Flush() //nolint:errcheck
}
