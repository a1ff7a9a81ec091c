package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/store"
)

func TestInfoReportsWarnings(t *testing.T) {
	color.NoColor = true
	t.Setenv("MINDTRACKR_CONFIG_PATH", "")

	slot := store.NewMemorySlot("")
	slot.Seed([]byte(`[{"id":"a","date":"2024-03-01","mood":"Happy","text":"Had a great day!","createdAt":"2024-03-01T10:00:00.000Z"},{"id":"b","mood":"Confused"}]`))
	j := journal.New(slot)
	j.Load(context.Background())

	cfg := &store.Settings{Path: "/tmp/journal", Kind: store.BackendMemory, Limit: 1024}
	var out bytes.Buffer
	i := Info{Config: cfg, Journal: j, Out: &out}

	r, err := i.Collect()
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if r.Entries != 1 || len(r.Warnings) != 1 {
		t.Fatalf("expected one entry and one warning, got %+v", r)
	}
	if r.Slot != store.DefaultSlotName || r.Backend != "memory" || r.Schema != entry.SchemaVersion {
		t.Fatalf("unexpected report %+v", r)
	}

	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("info failed: %v", err)
	}
	got := out.String()
	for _, want := range []string{"MINDTRACKR_CONFIG_PATH env var not set", "/tmp/journal", "1024 bytes", "v2", "1 records could not be read"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestInfoWithoutJournal(t *testing.T) {
	i := Info{Config: &store.Settings{}}
	if _, err := i.Collect(); err == nil {
		t.Fatalf("expected error without a journal")
	}
}
