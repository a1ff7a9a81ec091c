package mood

import "testing"

func TestAllOrder(t *testing.T) {
	want := []Mood{Happy, Sad, Stressed, Calm, Angry, Excited}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("expected %d moods, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestValid(t *testing.T) {
	for _, m := range All() {
		if !m.Valid() {
			t.Fatalf("expected %s to be valid", m)
		}
	}
	for _, m := range []Mood{"", "Confused", "happy"} {
		if m.Valid() {
			t.Fatalf("expected %q to be invalid", m)
		}
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Mood{
		"Happy":    Happy,
		" sad ":    Sad,
		"ANXIOUS":  Stressed,
		"relaxed":  Calm,
		"mad":      Angry,
		"thrilled": Excited,
		"":         Unset,
		"   ":      Unset,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("Parse(%q): expected %s, got %s", in, want, got)
		}
	}
	if _, err := Parse("confused"); err == nil {
		t.Fatalf("expected error for unknown mood")
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve(" joy "); got != Happy {
		t.Fatalf("expected Happy, got %s", got)
	}
	if got := Resolve(""); got != Unset {
		t.Fatalf("expected Unset, got %q", got)
	}
	got := Resolve(" Confused ")
	if got != Mood("Confused") {
		t.Fatalf("expected unknown name back, got %q", got)
	}
	if got.Valid() {
		t.Fatalf("unknown mood must not be valid")
	}
}

func TestColor(t *testing.T) {
	if Happy.Color() != "#10b981" {
		t.Fatalf("unexpected happy colour %s", Happy.Color())
	}
	if Mood("Confused").Color() != FallbackColor {
		t.Fatalf("expected fallback colour for unknown mood")
	}
}

func TestIndex(t *testing.T) {
	if Excited.Index() != 5 {
		t.Fatalf("expected Excited at 5, got %d", Excited.Index())
	}
	if Mood("nope").Index() != -1 {
		t.Fatalf("expected -1 for unknown mood")
	}
}
