package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/printers"
	"tableflip.dev/mindtrackr/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Long: `Open the interactive journal: write entries, pick a mood, browse and filter
past entries and watch the mood chart update. Changes made by other
mindtrackr processes are picked up automatically.`,
		Example: `
mindtrackr ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, j *journal.Store) error {
				i := ui.UI{
					Journal: j,
					Logger:  logger,
					Profile: printers.ChartProfile(os.Stdout),
				}
				return i.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
