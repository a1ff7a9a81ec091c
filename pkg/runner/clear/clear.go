package clear

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/mindtrackr/pkg/journal"
)

// ErrAborted is returned when the confirmation prompt is declined.
var ErrAborted = errors.New("clear aborted")

type Clear struct {
	// Yes skips the confirmation prompt.
	Yes bool

	Journal *journal.Store
	In      io.Reader
	Out     io.Writer
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not clear, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	count := n.Journal.Len()
	if !n.Yes {
		in := n.In
		if in == nil {
			in = os.Stdin
		}
		_, _ = fmt.Fprintf(out, "Delete all %d journal entries? [y/N] ", count)
		answer, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			return ErrAborted
		}
	}

	if err := n.Journal.Clear(ctx); err != nil {
		return err
	}
	_, _ = color.New(color.Faint).Fprintf(out, "cleared %d entries\n", count)
	return nil
}
