package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the journal and where it is stored.",
		Example: `
mindtrackr info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, j *journal.Store) error {
				s := info.Info{
					Config:  config,
					Journal: j,
					Out:     cmd.OutOrStdout(),
				}
				if output.JSON {
					r, err := s.Collect()
					if err != nil {
						return err
					}
					return output.PrintJSON(r)
				}
				return s.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
