// Package mood defines the closed set of moods a journal entry can carry.
package mood

import (
	"fmt"
	"strings"
)

// Mood is one value from the fixed mood enumeration. The zero value is
// "unset" and is not a valid mood for an entry.
type Mood string

const (
	Happy    Mood = "Happy"
	Sad      Mood = "Sad"
	Stressed Mood = "Stressed"
	Calm     Mood = "Calm"
	Angry    Mood = "Angry"
	Excited  Mood = "Excited"

	// Unset is used by filters to mean "all moods".
	Unset Mood = ""
)

// FallbackColor is used for anything outside the palette.
const FallbackColor = "#94a3b8"

// Info describes a mood for legends and pickers.
type Info struct {
	Mood    Mood
	Color   string
	Aliases []string
	Meaning string
}

var defaults = []Info{
	{Mood: Happy, Color: "#10b981", Aliases: []string{"happy", "joy", "glad", "good"}, Meaning: "feeling good"},
	{Mood: Sad, Color: "#3b82f6", Aliases: []string{"sad", "down", "low", "blue"}, Meaning: "feeling down"},
	{Mood: Stressed, Color: "#ef4444", Aliases: []string{"stressed", "anxious", "tense", "stress"}, Meaning: "under pressure"},
	{Mood: Calm, Color: "#8b5cf6", Aliases: []string{"calm", "relaxed", "peaceful"}, Meaning: "at ease"},
	{Mood: Angry, Color: "#f59e0b", Aliases: []string{"angry", "mad", "annoyed", "frustrated"}, Meaning: "frustrated or upset"},
	{Mood: Excited, Color: "#ec4899", Aliases: []string{"excited", "thrilled", "hyped"}, Meaning: "full of energy"},
}

// All returns the moods in their fixed display order.
func All() []Mood {
	out := make([]Mood, 0, len(defaults))
	for _, d := range defaults {
		out = append(out, d.Mood)
	}
	return out
}

// Defaults returns legend information for every mood in display order.
func Defaults() []Info {
	out := make([]Info, len(defaults))
	copy(out, defaults)
	return out
}

// Valid reports whether m is one of the recognised moods.
func (m Mood) Valid() bool {
	_, ok := lookup(m)
	return ok
}

// Index is the position of m in display order, or -1.
func (m Mood) Index() int {
	for i, d := range defaults {
		if d.Mood == m {
			return i
		}
	}
	return -1
}

// Color returns the hex colour used when charting m.
func (m Mood) Color() string {
	if d, ok := lookup(m); ok {
		return d.Color
	}
	return FallbackColor
}

func (m Mood) String() string {
	return string(m)
}

// Parse resolves a user supplied name or alias, ignoring case and
// surrounding whitespace. An empty string parses to Unset.
func Parse(s string) (Mood, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return Unset, nil
	}
	for _, d := range defaults {
		if strings.ToLower(string(d.Mood)) == key {
			return d.Mood, nil
		}
		for _, a := range d.Aliases {
			if a == key {
				return d.Mood, nil
			}
		}
	}
	return Unset, fmt.Errorf("unknown mood %q", s)
}

// Resolve is Parse without the error: unknown names come back unchanged
// (trimmed) so validation can reject them as an invalid mood.
func Resolve(s string) Mood {
	if m, err := Parse(s); err == nil {
		return m
	}
	return Mood(strings.TrimSpace(s))
}

// Names returns the canonical names, handy for flag help and completion.
func Names() []string {
	out := make([]string, 0, len(defaults))
	for _, d := range defaults {
		out = append(out, string(d.Mood))
	}
	return out
}

func lookup(m Mood) (Info, bool) {
	for _, d := range defaults {
		if d.Mood == m {
			return d, true
		}
	}
	return Info{}, false
}
