package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/mindtrackr/pkg/journal"
)

type Remove struct {
	IDs     []string
	Journal *journal.Store
	Out     io.Writer

	// Removed lists the ids that existed before Do ran.
	Removed []string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not remove, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	faint := color.New(color.Faint)

	for _, id := range n.IDs {
		e, existed := n.Journal.Get(id)
		if err := n.Journal.Remove(ctx, id); err != nil {
			return err
		}
		if !existed {
			_, _ = faint.Fprintf(out, "no entry with id %s\n", id)
			continue
		}
		n.Removed = append(n.Removed, id)
		_, _ = fmt.Fprintf(out, "removed %s\n", e)
	}
	return nil
}
