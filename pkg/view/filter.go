// Package view derives read-only projections from a collection of entries.
// Nothing here mutates its input.
package view

import (
	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/mood"
)

// FilterByMood keeps entries with mood m, in order. An empty m keeps
// everything.
func FilterByMood(entries []*entry.Entry, m mood.Mood) []*entry.Entry {
	if m == mood.Unset {
		return append([]*entry.Entry(nil), entries...)
	}
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Mood == m {
			out = append(out, e)
		}
	}
	return out
}

// FilterByDateRange keeps entries dated within [start, end]. A nil bound is
// open on that side.
func FilterByDateRange(entries []*entry.Entry, start, end *entry.Date) []*entry.Entry {
	if start == nil && end == nil {
		return append([]*entry.Entry(nil), entries...)
	}
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if start != nil && e.Date.Before(*start) {
			continue
		}
		if end != nil && e.Date.After(*end) {
			continue
		}
		out = append(out, e)
	}
	return out
}
