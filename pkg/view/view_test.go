package view

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/mood"
)

func day(d int) entry.Date {
	return entry.Date{Year: 2024, Month: time.March, Day: d}
}

func mk(id string, m mood.Mood, d int) *entry.Entry {
	return entry.New(id, m, "entry "+id, day(d), day(d).Time())
}

func ids(entries []*entry.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func sample() []*entry.Entry {
	return []*entry.Entry{
		mk("a", mood.Happy, 3),
		mk("b", mood.Sad, 1),
		mk("c", mood.Happy, 3),
		mk("d", mood.Calm, 2),
		mk("e", mood.Sad, 5),
	}
}

func TestFilterByMood(t *testing.T) {
	in := sample()

	all := FilterByMood(in, mood.Unset)
	if diff := cmp.Diff(ids(in), ids(all)); diff != "" {
		t.Errorf("empty mood should keep input (-want +got):\n%s", diff)
	}
	for i := range in {
		if all[i] != in[i] {
			t.Fatalf("element %d is not the input element", i)
		}
	}

	if diff := cmp.Diff([]string{"b", "e"}, ids(FilterByMood(in, mood.Sad))); diff != "" {
		t.Errorf("sad filter (-want +got):\n%s", diff)
	}
	if got := FilterByMood(in, mood.Angry); len(got) != 0 {
		t.Errorf("expected no angry entries, got %v", ids(got))
	}
}

func TestFilterByMoodScenario(t *testing.T) {
	happy := mk("h", mood.Happy, 1)
	sad := mk("s", mood.Sad, 1)
	got := FilterByMood([]*entry.Entry{happy, sad}, mood.Sad)
	if len(got) != 1 || got[0] != sad {
		t.Fatalf("expected only the sad entry, got %v", ids(got))
	}
}

func TestFilterByDateRange(t *testing.T) {
	in := sample()
	start, end := day(2), day(3)

	tests := []struct {
		name       string
		start, end *entry.Date
		want       []string
	}{
		{name: "open", want: []string{"a", "b", "c", "d", "e"}},
		{name: "inclusive", start: &start, end: &end, want: []string{"a", "c", "d"}},
		{name: "from", start: &end, want: []string{"a", "c", "e"}},
		{name: "until", end: &start, want: []string{"b", "d"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ids(FilterByDateRange(in, tc.start, tc.end))); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortByDate(t *testing.T) {
	in := sample()

	if diff := cmp.Diff([]string{"e", "a", "c", "d", "b"}, ids(SortByDate(in, Descending))); diff != "" {
		t.Errorf("descending (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "d", "a", "c", "e"}, ids(SortByDate(in, Ascending))); diff != "" {
		t.Errorf("ascending (-want +got):\n%s", diff)
	}
	// The input is untouched.
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, ids(in)); diff != "" {
		t.Errorf("input reordered (-want +got):\n%s", diff)
	}
	var zero Direction
	if zero != Descending {
		t.Fatalf("zero direction should be descending")
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"": Descending, "ASC": Ascending, "newest": Descending} {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Fatalf("ParseDirection(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestCountMoods(t *testing.T) {
	in := sample()
	got := CountMoods(in)
	want := MoodCounts{mood.Happy: 2, mood.Sad: 2, mood.Calm: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got.Total() != len(in) {
		t.Fatalf("counts sum to %d, want %d", got.Total(), len(in))
	}
	if diff := cmp.Diff([]mood.Mood{mood.Happy, mood.Sad, mood.Calm}, got.Ordered()); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	if len(CountMoods(nil)) != 0 {
		t.Fatalf("expected empty counts")
	}
}

func TestMoodFrequencyPercent(t *testing.T) {
	if got := MoodFrequencyPercent(nil, mood.Happy); got != 0 {
		t.Fatalf("empty collection: got %d", got)
	}
	in := sample()
	if got := MoodFrequencyPercent(in, mood.Happy); got != 40 {
		t.Fatalf("happy: got %d want 40", got)
	}
	tests := []struct{ count, total, want int }{
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
		{1, 200, 1},
		{0, 5, 0},
		{5, 5, 100},
	}
	for _, tc := range tests {
		if got := Percent(tc.count, tc.total); got != tc.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tc.count, tc.total, got, tc.want)
		}
	}
}

func TestCountsByDate(t *testing.T) {
	want := []DateCount{
		{Date: day(1), Count: 1},
		{Date: day(2), Count: 1},
		{Date: day(3), Count: 2},
		{Date: day(5), Count: 1},
	}
	if diff := cmp.Diff(want, CountsByDate(sample())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sample())
	if s.Total != 5 || s.Top != mood.Happy {
		t.Fatalf("unexpected summary %+v", s)
	}
	if diff := cmp.Diff(map[mood.Mood]int{mood.Happy: 40, mood.Sad: 40, mood.Calm: 20}, s.Percent); diff != "" {
		t.Errorf("percent (-want +got):\n%s", diff)
	}
	if *s.First != day(1) || *s.Last != day(5) {
		t.Fatalf("unexpected range %s..%s", s.First, s.Last)
	}

	empty := Summarize(nil)
	if empty.Total != 0 || empty.Top != mood.Unset || empty.First != nil {
		t.Fatalf("unexpected empty summary %+v", empty)
	}
}

func TestDominantByDate(t *testing.T) {
	in := append(sample(), mk("f", mood.Calm, 3), mk("g", mood.Calm, 3))
	want := map[entry.Date]mood.Mood{
		day(1): mood.Sad,
		day(2): mood.Calm,
		day(3): mood.Happy, // two Happy, two Calm: Happy comes first
		day(5): mood.Sad,
	}
	if diff := cmp.Diff(want, DominantByDate(in)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
