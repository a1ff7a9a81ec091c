package view

import (
	"fmt"
	"slices"
	"strings"

	"tableflip.dev/mindtrackr/pkg/entry"
)

type Direction int

const (
	// Descending puts the newest date first.
	Descending Direction = iota
	Ascending
)

func (d Direction) String() string {
	if d == Ascending {
		return "asc"
	}
	return "desc"
}

// ParseDirection accepts asc/ascending/oldest and desc/descending/newest.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc", "descending", "newest":
		return Descending, nil
	case "asc", "ascending", "oldest":
		return Ascending, nil
	default:
		return Descending, fmt.Errorf("view: unknown sort order %q", s)
	}
}

// SortByDate returns a new slice ordered by entry date. Entries sharing a
// date keep their relative order.
func SortByDate(entries []*entry.Entry, dir Direction) []*entry.Entry {
	out := append([]*entry.Entry(nil), entries...)
	slices.SortStableFunc(out, func(a, b *entry.Entry) int {
		if dir == Ascending {
			return a.Date.Compare(b.Date)
		}
		return b.Date.Compare(a.Date)
	})
	return out
}
