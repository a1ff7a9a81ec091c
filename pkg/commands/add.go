package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/commands/options"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <text...> --mood <mood>",
		Short: "Write a journal entry",
		Example: `
mindtrackr add Had a great day! --mood happy
mindtrackr add "Rainy and tired." -m sad --on 3/2
`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := mo.Lenient()
			on, err := oo.GetOn(now())
			if err != nil {
				return output.HandleError(err)
			}
			return run(cmd, func(ctx context.Context, j *journal.Store) error {
				a := add.Add{
					Text:    strings.Join(args, " "),
					Mood:    m,
					On:      on,
					ShowID:  io.ShowID,
					Journal: j,
					Out:     cmd.OutOrStdout(),
				}
				a.Quiet = output.JSON
				if err := a.Do(ctx); err != nil {
					return err
				}
				if output.JSON {
					return output.PrintJSON(a.Added)
				}
				return nil
			})
		},
	}

	options.AddMoodArg(cmd, mo, "Mood of the entry.")
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
