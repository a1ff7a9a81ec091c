// Package moods prints the mood legend.
package moods

import (
	"context"
	"io"

	"tableflip.dev/mindtrackr/pkg/printers"
)

// Moods prints every mood with its colour, aliases and meaning.
type Moods struct {
	Out io.Writer
}

func (k *Moods) Do(_ context.Context) error {
	pp := printers.PrettyPrint{Out: k.Out}
	pp.NewLine()
	pp.Legend()
	return nil
}
