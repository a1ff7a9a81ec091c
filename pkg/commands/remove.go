package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <id>...",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete journal entries by id",
		Long: `Delete journal entries by id. Use "mindtrackr list --show-id" to find ids.
Unknown ids are reported and skipped.`,
		Example: `
mindtrackr remove 3f2504e0-4f89-11d3-9a0c-0305e82c3301
`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return entryCompletions(cmd), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, j *journal.Store) error {
				r := remove.Remove{IDs: args, Journal: j, Out: cmd.OutOrStdout()}
				if output.JSON {
					r.Out = io.Discard
				}
				if err := r.Do(ctx); err != nil {
					return err
				}
				if output.JSON {
					return output.PrintJSON(map[string]any{"removed": r.Removed})
				}
				return nil
			})
		},
	}

	topLevel.AddCommand(cmd)
}
