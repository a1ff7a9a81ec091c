// Package stats prints mood counts, percentages and a chart.
package stats

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/mindtrackr/pkg/chart"
	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/printers"
	"tableflip.dev/mindtrackr/pkg/view"
)

type Stats struct {
	Chart chart.Kind
	// NoChart prints only the table.
	NoChart bool
	Since   *entry.Date
	Until   *entry.Date

	Journal *journal.Store
	Canvas  *chart.Canvas
	Out     io.Writer

	// Summary is set once Do has run.
	Summary view.Summary
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not summarize, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	entries := view.FilterByDateRange(n.Journal.Entries(), n.Since, n.Until)
	n.Summary = view.Summarize(entries)

	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.TitleWithCount("Moods", n.Summary.Total)
	pp.NewLine()
	pp.Summary(n.Summary)
	if n.NoChart {
		return nil
	}

	var data chart.Data
	switch n.Chart {
	case chart.Line:
		data = chart.FromDates(view.CountsByDate(entries))
	default:
		data = chart.FromCounts(n.Summary.Counts, n.Summary.Total)
	}

	canvas := n.Canvas
	if canvas == nil {
		canvas = chart.NewCanvas()
		defer func() { _ = canvas.Close() }()
	}
	h, err := canvas.Render(n.Chart, data)
	if err != nil {
		return err
	}
	pp.NewLine()
	if err := h.Draw(out); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out)
	return nil
}
