package list

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/mood"
	"tableflip.dev/mindtrackr/pkg/printers"
	"tableflip.dev/mindtrackr/pkg/view"
)

type List struct {
	ShowID bool
	Mood   mood.Mood
	Order  view.Direction
	Since  *entry.Date
	Until  *entry.Date

	Journal *journal.Store
	Out     io.Writer

	// Result holds the entries Do selected, in display order.
	Result []*entry.Entry
}

func (n *List) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not list, no journal")
	}

	n.Result = n.Select()

	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount(n.title(), len(n.Result))
	pp.Entries(n.Result...)
	return nil
}

// Select filters by mood, then by date range, then sorts.
func (n *List) Select() []*entry.Entry {
	all := n.Journal.Entries()
	all = view.FilterByMood(all, n.Mood)
	all = view.FilterByDateRange(all, n.Since, n.Until)
	return view.SortByDate(all, n.Order)
}

func (n *List) title() string {
	t := "Journal"
	if n.Mood != mood.Unset {
		t = n.Mood.String()
	}
	switch {
	case n.Since != nil && n.Until != nil:
		t += fmt.Sprintf(" %s to %s", n.Since, n.Until)
	case n.Since != nil:
		t += fmt.Sprintf(" since %s", n.Since)
	case n.Until != nil:
		t += fmt.Sprintf(" until %s", n.Until)
	}
	return t
}
