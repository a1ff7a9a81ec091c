package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/runner/calendar"
)

const layoutMonth = "2006-01"

func addCalendar(topLevel *cobra.Command) {
	month := ""

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month with each day coloured by its most frequent mood",
		Example: `
mindtrackr calendar
mindtrackr calendar --month 2024-03
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			on := entry.DateOf(now())
			if month != "" {
				t, err := time.Parse(layoutMonth, month)
				if err != nil {
					return output.HandleError(fmt.Errorf("invalid month %q, expected YYYY-MM", month))
				}
				on = entry.DateOf(t)
			}
			return run(cmd, func(ctx context.Context, j *journal.Store) error {
				c := calendar.Calendar{Month: on, Journal: j, Out: cmd.OutOrStdout()}
				return c.Do(ctx)
			})
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show, YYYY-MM. Defaults to this month.")

	topLevel.AddCommand(cmd)
}
