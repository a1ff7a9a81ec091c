package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/commands/options"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/runner/list"
	"tableflip.dev/mindtrackr/pkg/view"
)

func addList(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	wo := &options.WindowOptions{}
	io := &options.IDOptions{}
	order := "desc"

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List journal entries, newest first",
		Example: `
mindtrackr list
mindtrackr list --mood happy --order asc
mindtrackr list --last 2w
mindtrackr list --since 2024-03-01 --until 2024-03-31 --show-id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := mo.Mood()
			if err != nil {
				return output.HandleError(err)
			}
			dir, err := view.ParseDirection(order)
			if err != nil {
				return output.HandleError(err)
			}
			since, until, err := wo.Bounds(now())
			if err != nil {
				return output.HandleError(err)
			}
			return run(cmd, func(ctx context.Context, j *journal.Store) error {
				l := list.List{
					ShowID:  io.ShowID,
					Mood:    m,
					Order:   dir,
					Since:   since,
					Until:   until,
					Journal: j,
					Out:     cmd.OutOrStdout(),
				}
				if output.JSON {
					return output.PrintJSON(l.Select())
				}
				return l.Do(ctx)
			})
		},
	}

	options.AddMoodArg(cmd, mo, "Only show entries with this mood.")
	options.AddWindowArgs(cmd, wo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().StringVar(&order, "order", order, "Sort by date: desc (newest first) or asc.")
	_ = cmd.RegisterFlagCompletionFunc("order", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"desc", "asc"}, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
