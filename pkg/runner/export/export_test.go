package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/mood"
	"tableflip.dev/mindtrackr/pkg/store"
)

var created = time.Date(2024, 3, 14, 9, 26, 53, 589000000, time.UTC)

func oneEntry(t *testing.T) *journal.Store {
	t.Helper()
	j := journal.New(store.NewMemorySlot(""),
		journal.WithClock(func() time.Time { return created }),
		journal.WithIDGenerator(func() string { return "id-1" }),
	)
	j.Load(context.Background())
	on := entry.Date{Year: 2024, Month: time.March, Day: 1}
	if _, err := j.Add(context.Background(), "Had a great day!", mood.Happy, &on); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return j
}

func TestExportJSONMatchesRecordFormat(t *testing.T) {
	j := oneEntry(t)
	var out bytes.Buffer
	e := Export{Format: FormatJSON, Journal: j, Out: &out}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	decoded, problems, err := entry.Decode(bytes.TrimSpace(out.Bytes()))
	if err != nil {
		t.Fatalf("export is not a record array: %v", err)
	}
	if len(problems) != 0 || len(decoded) != 1 {
		t.Fatalf("expected one clean record, got %d records and %v", len(decoded), problems)
	}
	if decoded[0].ID != "id-1" || decoded[0].Mood != mood.Happy {
		t.Fatalf("unexpected record %+v", decoded[0])
	}
}

func TestExportYAML(t *testing.T) {
	j := oneEntry(t)
	var out bytes.Buffer
	e := Export{Format: FormatYAML, Journal: j, Out: &out}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var records []map[string]string
	if err := yaml.Unmarshal(out.Bytes(), &records); err != nil {
		t.Fatalf("export is not yaml: %v\n%s", err, out.String())
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	want := map[string]string{
		"id":        "id-1",
		"date":      "2024-03-01",
		"mood":      "Happy",
		"text":      "Had a great day!",
		"createdAt": "2024-03-14T09:26:53.589Z",
	}
	for k, v := range want {
		if records[0][k] != v {
			t.Fatalf("%s: expected %q, got %q", k, v, records[0][k])
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatJSON, "JSON": FormatJSON, "yml": FormatYAML, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %s, got %s (%v)", in, want, got, err)
		}
	}
	if _, err := ParseFormat("csv"); err == nil || !strings.Contains(err.Error(), "csv") {
		t.Fatalf("expected csv to be rejected, got %v", err)
	}
}
