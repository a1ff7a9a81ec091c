package options

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/timeutil"
)

// WindowOptions bound a listing by date.
type WindowOptions struct {
	Since string
	Until string
	Last  string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Since, "since", "",
		"Earliest date to include, YYYY-MM-DD or M/D.")
	cmd.Flags().StringVar(&o.Until, "until", "",
		"Latest date to include, YYYY-MM-DD or M/D.")
	cmd.Flags().StringVar(&o.Last, "last", "",
		`Only the last window of days ending today, example: --last=2w or --last=10d.`)
}

// Bounds resolves the flags into an inclusive date range. Either end may
// be nil. --last cannot be combined with --since.
func (o *WindowOptions) Bounds(now time.Time) (since, until *entry.Date, err error) {
	if o.Last != "" && o.Since != "" {
		return nil, nil, errors.New("--last and --since cannot be used together")
	}
	if o.Last != "" {
		days, _, err := timeutil.ParseWindow(o.Last)
		if err != nil {
			return nil, nil, err
		}
		start := timeutil.WindowStart(entry.DateOf(now), days)
		since = &start
	}
	if o.Since != "" {
		d, err := ParseDay(o.Since, now)
		if err != nil {
			return nil, nil, err
		}
		since = &d
	}
	if o.Until != "" {
		d, err := ParseDay(o.Until, now)
		if err != nil {
			return nil, nil, err
		}
		until = &d
	}
	return since, until, nil
}
