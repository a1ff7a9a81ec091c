package list

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/mood"
	"tableflip.dev/mindtrackr/pkg/store"
	"tableflip.dev/mindtrackr/pkg/view"
)

func seeded(t *testing.T) *journal.Store {
	t.Helper()
	n := 0
	j := journal.New(store.NewMemorySlot(""), journal.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("e%d", n)
	}))
	j.Load(context.Background())
	for _, s := range []struct {
		day  int
		m    mood.Mood
		text string
	}{
		{1, mood.Happy, "Had a great day!"},
		{3, mood.Sad, "Rainy and tired."},
		{2, mood.Happy, "Lunch with friends."},
		{5, mood.Calm, "Quiet evening."},
	} {
		on := entry.Date{Year: 2024, Month: time.March, Day: s.day}
		if _, err := j.Add(context.Background(), s.text, s.m, &on); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return j
}

func ids(entries []*entry.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func day(d int) *entry.Date {
	return &entry.Date{Year: 2024, Month: time.March, Day: d}
}

func TestListSelect(t *testing.T) {
	j := seeded(t)

	tests := map[string]struct {
		list List
		want []string
	}{
		"all newest first": {
			list: List{},
			want: []string{"e4", "e2", "e3", "e1"},
		},
		"ascending": {
			list: List{Order: view.Ascending},
			want: []string{"e1", "e3", "e2", "e4"},
		},
		"by mood": {
			list: List{Mood: mood.Happy},
			want: []string{"e3", "e1"},
		},
		"date range": {
			list: List{Since: day(2), Until: day(3)},
			want: []string{"e2", "e3"},
		},
		"mood and range": {
			list: List{Mood: mood.Happy, Since: day(2)},
			want: []string{"e3"},
		},
		"nothing matches": {
			list: List{Mood: mood.Angry},
			want: []string{},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tc.list.Journal = j
			if diff := cmp.Diff(tc.want, ids(tc.list.Select())); diff != "" {
				t.Fatalf("unexpected selection (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListDoPrints(t *testing.T) {
	color.NoColor = true
	j := seeded(t)

	var out bytes.Buffer
	l := List{Mood: mood.Sad, Journal: j, Out: &out}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Sad - 1 entry") {
		t.Fatalf("expected mood title, got %q", got)
	}
	if !strings.Contains(got, "Rainy and tired.") {
		t.Fatalf("expected entry text, got %q", got)
	}
	if len(l.Result) != 1 {
		t.Fatalf("expected one result, got %d", len(l.Result))
	}
}

func TestListTitle(t *testing.T) {
	l := List{Since: day(1), Until: day(5)}
	if got := l.title(); got != "Journal 2024-03-01 to 2024-03-05" {
		t.Fatalf("unexpected title %q", got)
	}
	l = List{Mood: mood.Calm, Since: day(1)}
	if got := l.title(); got != "Calm since 2024-03-01" {
		t.Fatalf("unexpected title %q", got)
	}
}
