// Package mcp provides the Model Context Protocol server integration for mindtrackr.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/mood"
	"tableflip.dev/mindtrackr/pkg/view"
)

// Service exposes journal operations in transport-friendly shapes.
type Service struct {
	Journal *journal.Store
}

// ErrEntryNotFound is returned when no entry has the requested id.
var ErrEntryNotFound = errors.New("entry not found")

// AddEntryOptions captures the parameters used to create a new entry.
type AddEntryOptions struct {
	Text string
	Mood string
	// Date is YYYY-MM-DD; empty means today.
	Date string
}

// ListOptions narrows and orders ListEntries.
type ListOptions struct {
	Mood  string
	Order string
	Since string
	Until string
	Limit int
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Mood      string `json:"mood"`
	Color     string `json:"color"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

// StatsDTO mirrors view.Summary with string keys.
type StatsDTO struct {
	Total   int            `json:"total"`
	Counts  map[string]int `json:"counts"`
	Percent map[string]int `json:"percent"`
	Top     string         `json:"top,omitempty"`
	First   string         `json:"first,omitempty"`
	Last    string         `json:"last,omitempty"`
}

func NewService(j *journal.Store) *Service {
	return &Service{Journal: j}
}

func (s *Service) ready() error {
	if s.Journal == nil {
		return errors.New("journal is not configured")
	}
	return nil
}

// AddEntry validates and stores a new entry.
func (s *Service) AddEntry(ctx context.Context, opts AddEntryOptions) (*EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	// Unknown moods are left for entry validation to report.
	m := mood.Resolve(opts.Mood)
	var on *entry.Date
	if d := strings.TrimSpace(opts.Date); d != "" {
		parsed, err := entry.ParseDate(d)
		if err != nil {
			return nil, err
		}
		on = &parsed
	}
	e, err := s.Journal.Add(ctx, opts.Text, m, on)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

// RemoveEntry deletes an entry and reports whether it existed. Unknown ids
// are not an error.
func (s *Service) RemoveEntry(ctx context.Context, id string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	if id == "" {
		return false, errors.New("id is required")
	}
	_, existed := s.Journal.Get(id)
	if err := s.Journal.Remove(ctx, id); err != nil {
		return false, err
	}
	return existed, nil
}

// ListEntries filters by mood and date range, sorts by date and applies
// the limit last.
func (s *Service) ListEntries(_ context.Context, opts ListOptions) ([]EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	m, err := mood.Parse(opts.Mood)
	if err != nil {
		return nil, err
	}
	dir, err := view.ParseDirection(opts.Order)
	if err != nil {
		return nil, err
	}
	since, err := optionalDate(opts.Since)
	if err != nil {
		return nil, err
	}
	until, err := optionalDate(opts.Until)
	if err != nil {
		return nil, err
	}

	entries := s.Journal.Entries()
	entries = view.FilterByMood(entries, m)
	entries = view.FilterByDateRange(entries, since, until)
	entries = view.SortByDate(entries, dir)
	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}
	return toDTOs(entries), nil
}

// MoodCounts returns counts keyed by mood name; absent moods are omitted.
func (s *Service) MoodCounts(_ context.Context) (map[string]int, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	out := map[string]int{}
	for m, n := range view.CountMoods(s.Journal.Entries()) {
		out[m.String()] = n
	}
	return out, nil
}

// MoodFrequency is the rounded percentage of entries with the mood.
func (s *Service) MoodFrequency(_ context.Context, name string) (mood.Mood, int, error) {
	if err := s.ready(); err != nil {
		return mood.Unset, 0, err
	}
	m, err := mood.Parse(name)
	if err != nil {
		return mood.Unset, 0, err
	}
	if m == mood.Unset {
		return mood.Unset, 0, errors.New("mood is required")
	}
	return m, view.MoodFrequencyPercent(s.Journal.Entries(), m), nil
}

func (s *Service) Stats(_ context.Context) (*StatsDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	sum := view.Summarize(s.Journal.Entries())
	dto := &StatsDTO{
		Total:   sum.Total,
		Counts:  map[string]int{},
		Percent: map[string]int{},
		Top:     sum.Top.String(),
	}
	for m, n := range sum.Counts {
		dto.Counts[m.String()] = n
		dto.Percent[m.String()] = sum.Percent[m]
	}
	if sum.First != nil {
		dto.First = sum.First.String()
		dto.Last = sum.Last.String()
	}
	return dto, nil
}

// EntryByID locates an entry by id.
func (s *Service) EntryByID(_ context.Context, id string) (*EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, errors.New("id is required")
	}
	e, ok := s.Journal.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	dto := toDTO(e)
	return &dto, nil
}

func optionalDate(s string) (*entry.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := entry.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func toDTOs(entries []*entry.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out
}

func toDTO(e *entry.Entry) EntryDTO {
	return EntryDTO{
		ID:        e.ID,
		Date:      e.Date.String(),
		Mood:      e.Mood.String(),
		Color:     e.Mood.Color(),
		Text:      e.Text,
		CreatedAt: e.CreatedAt.String(),
	}
}
