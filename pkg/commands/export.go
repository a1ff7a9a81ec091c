package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/runner/export"
	"tableflip.dev/mindtrackr/pkg/view"
)

func addExport(topLevel *cobra.Command) {
	format := "json"
	order := "asc"

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every entry as JSON or YAML",
		Example: `
mindtrackr export > journal.json
mindtrackr export --format yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return output.HandleError(err)
			}
			dir, err := view.ParseDirection(order)
			if err != nil {
				return output.HandleError(err)
			}
			return run(cmd, func(ctx context.Context, j *journal.Store) error {
				e := export.Export{Format: f, Order: dir, Journal: j, Out: cmd.OutOrStdout()}
				return e.Do(ctx)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", format, "Output format. One of 'json' or 'yaml'.")
	cmd.Flags().StringVar(&order, "order", order, "Sort by date: asc (oldest first) or desc.")

	topLevel.AddCommand(cmd)
}
