package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/entry"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Date of the entry, example: --on="2024-3-14" or --on="3/14". Defaults to today.`)
}

// GetOn returns nil when --on was not given.
func (o *OnOptions) GetOn(now time.Time) (*entry.Date, error) {
	if o.OnString == "" {
		return nil, nil
	}
	d, err := ParseDay(o.OnString, now)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseDay accepts YYYY-MM-DD (single digit month and day allowed) or M/D.
// M/D without a year means the most recent such day on or before now, since
// journal entries look back.
func ParseDay(s string, now time.Time) (entry.Date, error) {
	if t, err := time.Parse(layoutISO, s); err == nil {
		return entry.DateOf(t), nil
	}
	t, err := time.Parse(layoutISOShort, s)
	if err != nil {
		return entry.Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or M/D", s)
	}
	year := now.Year()
	if (entry.Date{Year: year, Month: t.Month(), Day: t.Day()}).After(entry.DateOf(now)) {
		year--
	}
	return entry.DateOf(time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)), nil
}
