package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/mood"
	"tableflip.dev/mindtrackr/pkg/runner/moods"
)

func addMoods(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "moods",
		Aliases: []string{"key"},
		Short:   "Print the moods, their colours and aliases",
		Example: `
mindtrackr moods
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output.JSON {
				return output.HandleError(output.PrintJSON(mood.Defaults()))
			}
			k := moods.Moods{Out: cmd.OutOrStdout()}
			err := k.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
