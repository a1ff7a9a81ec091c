package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/mood"
	"tableflip.dev/mindtrackr/pkg/printers"
	"tableflip.dev/mindtrackr/pkg/view"
)

type Add struct {
	Text string
	Mood mood.Mood
	On   *entry.Date

	ShowID bool
	// Quiet skips printing the journal.
	Quiet   bool
	Journal *journal.Store
	Out     io.Writer

	// Added is set once Do succeeds.
	Added *entry.Entry
}

func (n *Add) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not add, no journal")
	}

	e, err := n.Journal.Add(ctx, n.Text, n.Mood, n.On)
	if err != nil {
		return err
	}
	n.Added = e
	if n.Quiet {
		return nil
	}

	all := view.SortByDate(n.Journal.Entries(), view.Descending)

	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Journal", len(all))
	pp.Entries(all...)
	return nil
}
