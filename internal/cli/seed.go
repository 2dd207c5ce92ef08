package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/registry-backend/internal/app"
	"github.com/heartmarshall/registry-backend/internal/app/seeder"
)

func seedCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo organizations",
		Long: `Insert ten demo organizations, each in its own transaction. Organizations
whose name already exists are reported and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}

			a, err := app.New(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			res := a.Seed(cmd.Context())
			printSeedResult(cmd.OutOrStdout(), res)

			if res.Inserted == 0 && len(res.Failed) > 0 {
				return fmt.Errorf("no organizations inserted")
			}
			return nil
		},
	}
}

func printSeedResult(out io.Writer, res seeder.Result) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "%s\n", center("Organization seeding", 50))
	fmt.Fprintln(out, rule)

	fmt.Fprintf(out, "  Inserted: %s\n", color.New(color.FgGreen).Sprint(res.Inserted))
	skipped := color.New(color.FgGreen).Sprint(len(res.Failed))
	if len(res.Failed) > 0 {
		skipped = color.New(color.FgRed).Sprint(len(res.Failed))
	}
	fmt.Fprintf(out, "  Skipped:  %s of %d\n", skipped, res.Total())

	for _, f := range res.Failed {
		if f.Exists {
			fmt.Fprintf(out, "    %s %s: already exists\n", color.New(color.FgYellow).Sprint("-"), f.Name)
			continue
		}
		fmt.Fprintf(out, "    %s %s: %v\n", color.New(color.FgRed).Sprint("!"), f.Name, f.Err)
	}
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}
