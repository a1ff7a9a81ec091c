// Package entry holds the journal record, its calendar date and timestamp
// types, input validation and the persisted JSON codec.
package entry

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/mindtrackr/pkg/mood"
)

// Entry is one journal record.
type Entry struct {
	ID        string    `json:"id" yaml:"id"`
	Date      Date      `json:"date" yaml:"date"`
	Mood      mood.Mood `json:"mood" yaml:"mood"`
	Text      string    `json:"text" yaml:"text"`
	CreatedAt Timestamp `json:"createdAt" yaml:"createdAt"`
}

// New builds an entry with trimmed text. Callers are expected to have run
// Validate first.
func New(id string, m mood.Mood, text string, on Date, created time.Time) *Entry {
	return &Entry{
		ID:        id,
		Date:      on,
		Mood:      m,
		Text:      strings.TrimSpace(text),
		CreatedAt: Timestamp{Time: created},
	}
}

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.New().String()
}

// Clone returns a copy that shares nothing with e.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s  %s", e.Date, e.Mood, e.Text)
}

// CloneAll copies every entry in the slice.
func CloneAll(entries []*Entry) []*Entry {
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Clone())
	}
	return out
}
