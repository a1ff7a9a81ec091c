package view

import (
	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/mood"
)

// MoodCounts maps each mood present to how many entries carry it. Moods with
// no entries are absent.
type MoodCounts map[mood.Mood]int

// Total sums the counts.
func (c MoodCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Ordered lists the present moods in enumeration order.
func (c MoodCounts) Ordered() []mood.Mood {
	var out []mood.Mood
	for _, m := range mood.All() {
		if c[m] > 0 {
			out = append(out, m)
		}
	}
	return out
}

// CountMoods tallies entries per mood. Entries with a mood outside the
// fixed set are skipped.
func CountMoods(entries []*entry.Entry) MoodCounts {
	counts := MoodCounts{}
	for _, e := range entries {
		if e.Mood.Valid() {
			counts[e.Mood]++
		}
	}
	return counts
}

// MoodFrequencyPercent is the share of entries with mood m as a whole
// percentage, rounded half away from zero. It is 0 for an empty collection.
func MoodFrequencyPercent(entries []*entry.Entry, m mood.Mood) int {
	total := len(entries)
	if total == 0 {
		return 0
	}
	count := 0
	for _, e := range entries {
		if e.Mood == m {
			count++
		}
	}
	return Percent(count, total)
}

// Percent rounds count/total*100 half away from zero using integers only.
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return (count*200 + total) / (2 * total)
}

// DateCount is how many entries fall on one date.
type DateCount struct {
	Date  entry.Date
	Count int
}

// CountsByDate totals entries per date, oldest first.
func CountsByDate(entries []*entry.Entry) []DateCount {
	if len(entries) == 0 {
		return nil
	}
	var out []DateCount
	for _, e := range SortByDate(entries, Ascending) {
		if n := len(out); n > 0 && out[n-1].Date == e.Date {
			out[n-1].Count++
			continue
		}
		out = append(out, DateCount{Date: e.Date, Count: 1})
	}
	return out
}

// DominantByDate picks the most frequent mood for each date. Ties go to
// the mood listed first in the enumeration.
func DominantByDate(entries []*entry.Entry) map[entry.Date]mood.Mood {
	perDay := map[entry.Date][]*entry.Entry{}
	for _, e := range entries {
		perDay[e.Date] = append(perDay[e.Date], e)
	}
	out := make(map[entry.Date]mood.Mood, len(perDay))
	for d, es := range perDay {
		out[d] = Summarize(es).Top
	}
	return out
}
