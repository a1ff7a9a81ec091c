package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/chart"
	"tableflip.dev/mindtrackr/pkg/commands/options"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/printers"
	"tableflip.dev/mindtrackr/pkg/runner/stats"
	"tableflip.dev/mindtrackr/pkg/view"
)

func addStats(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	kind := "bar"
	noChart := false

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"summary"},
		Short:   "Mood counts, percentages and a chart",
		Example: `
mindtrackr stats
mindtrackr stats --chart pie
mindtrackr stats --chart line --last 4w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := chart.ParseKind(kind)
			if err != nil {
				return output.HandleError(err)
			}
			since, until, err := wo.Bounds(now())
			if err != nil {
				return output.HandleError(err)
			}
			return run(cmd, func(ctx context.Context, j *journal.Store) error {
				if output.JSON {
					return output.PrintJSON(view.Summarize(view.FilterByDateRange(j.Entries(), since, until)))
				}

				canvas := chart.NewCanvas(chart.WithProfile(printers.ChartProfile(os.Stdout)))
				defer func() { _ = canvas.Close() }()

				s := stats.Stats{
					Chart:   k,
					NoChart: noChart,
					Since:   since,
					Until:   until,
					Journal: j,
					Canvas:  canvas,
					Out:     cmd.OutOrStdout(),
				}
				return s.Do(ctx)
			})
		},
	}

	options.AddWindowArgs(cmd, wo)
	cmd.Flags().StringVar(&kind, "chart", kind, "Chart to draw: bar, pie or line.")
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "Only print the table.")
	_ = cmd.RegisterFlagCompletionFunc("chart", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"bar", "pie", "line"}, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
