// Package calendar prints a month of the journal as a grid.
package calendar

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/printers"
)

type Calendar struct {
	// Month is any day in the month to print.
	Month   entry.Date
	Journal *journal.Store
	Out     io.Writer
}

func (n *Calendar) Do(_ context.Context) error {
	if n.Journal == nil {
		return errors.New("can not print calendar, no journal")
	}
	if n.Month.IsZero() {
		return errors.New("calendar month is required")
	}
	first := entry.Date{Year: n.Month.Year, Month: n.Month.Month, Day: 1}
	last := entry.Date{Year: first.Year, Month: first.Month, Day: printers.DaysIn(first)}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Calendar(first, inMonth(n.Journal.Entries(), first, last)...)
	return nil
}

func inMonth(entries []*entry.Entry, first, last entry.Date) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Date.Before(first) && !e.Date.After(last) {
			out = append(out, e)
		}
	}
	return out
}
