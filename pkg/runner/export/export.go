// Package export writes the whole journal in a portable format.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/view"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown export format %q (expected json or yaml)", s)
}

type Export struct {
	Format  Format
	Order   view.Direction
	Journal *journal.Store
	Out     io.Writer
}

// Do writes every entry. JSON output is the persisted record format, so
// an export can be copied back into a slot as is.
func (n *Export) Do(_ context.Context) error {
	if n.Journal == nil {
		return errors.New("can not export, no journal")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	entries := view.SortByDate(n.Journal.Entries(), n.Order)

	switch n.Format {
	case FormatJSON, "":
		b, err := entry.Encode(entries)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q", n.Format)
	}
}
