package view

import (
	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/mood"
)

// Summary is the stats overview shown by the CLI, the UI and the MCP server.
type Summary struct {
	Total   int               `json:"total" yaml:"total"`
	Counts  MoodCounts        `json:"counts" yaml:"counts"`
	Percent map[mood.Mood]int `json:"percent" yaml:"percent"`
	Top     mood.Mood         `json:"top,omitempty" yaml:"top,omitempty"`
	First   *entry.Date       `json:"first,omitempty" yaml:"first,omitempty"`
	Last    *entry.Date       `json:"last,omitempty" yaml:"last,omitempty"`
}

// Summarize computes totals over entries. Ties for the most frequent mood
// go to the one listed first in the enumeration.
func Summarize(entries []*entry.Entry) Summary {
	counts := CountMoods(entries)
	s := Summary{
		Total:   len(entries),
		Counts:  counts,
		Percent: make(map[mood.Mood]int, len(counts)),
	}

	best := 0
	for _, m := range counts.Ordered() {
		s.Percent[m] = Percent(counts[m], s.Total)
		if counts[m] > best {
			best = counts[m]
			s.Top = m
		}
	}

	for _, e := range entries {
		d := e.Date
		if s.First == nil || d.Before(*s.First) {
			s.First = &d
		}
		if s.Last == nil || d.After(*s.Last) {
			last := d
			s.Last = &last
		}
	}
	return s
}
