package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command) {
	yes := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every journal entry",
		Example: `
mindtrackr clear
mindtrackr clear --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, j *journal.Store) error {
				c := clear.Clear{
					Yes:     yes || output.JSON,
					Journal: j,
					In:      cmd.InOrStdin(),
					Out:     cmd.OutOrStdout(),
				}
				return c.Do(ctx)
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")

	topLevel.AddCommand(cmd)
}
