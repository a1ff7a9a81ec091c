// Package journal owns the authoritative collection of journal entries and
// is the only writer of the persisted slot.
package journal

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/mood"
	"tableflip.dev/mindtrackr/pkg/store"
)

// Store holds the in-memory collection and mirrors every mutation to its slot.
type Store struct {
	mu       sync.Mutex
	slot     store.Slot
	entries  []*entry.Entry
	warnings []CorruptDataWarning

	now   func() time.Time
	newID func() string
	log   *zap.Logger
}

type Option func(*Store)

// WithClock overrides the time source used for default dates and createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how new entry ids are minted.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New wraps slot. Nothing is read until Load.
func New(slot store.Slot, opts ...Option) *Store {
	s := &Store{
		slot:  slot,
		now:   time.Now,
		newID: entry.NewID,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("slot", slot.Name()))
	return s
}

// Load replaces the in-memory collection with what the slot holds and
// returns a copy of it. Load never fails: unreadable or malformed data
// degrades to whatever could be recovered, and the discarded parts are
// reported through Warnings.
func (s *Store) Load(ctx context.Context) []*entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.warnings = nil
	s.entries = nil

	data, err := s.slot.Read(ctx)
	switch {
	case errors.Is(err, store.ErrEmpty):
		s.log.Debug("slot empty")
		return []*entry.Entry{}
	case err != nil:
		s.warn(CorruptDataWarning{Index: WholePayload, Reason: "read failed: " + err.Error()})
		return []*entry.Entry{}
	}

	entries, problems, err := entry.Decode(data)
	if err != nil {
		s.warn(CorruptDataWarning{Index: WholePayload, Reason: err.Error()})
		return []*entry.Entry{}
	}
	for _, p := range problems {
		s.warn(CorruptDataWarning{Index: p.Index, ID: p.ID, Reason: p.Reason})
	}

	s.entries = entries
	s.log.Debug("loaded entries", zap.Int("count", len(entries)), zap.Int("dropped", len(problems)))
	return entry.CloneAll(s.entries)
}

func (s *Store) warn(w CorruptDataWarning) {
	s.warnings = append(s.warnings, w)
	s.log.Warn("discarding persisted data",
		zap.Int("index", w.Index),
		zap.String("id", w.ID),
		zap.String("reason", w.Reason))
}

// Warnings returns what the most recent Load discarded.
func (s *Store) Warnings() []CorruptDataWarning {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CorruptDataWarning(nil), s.warnings...)
}

// Add validates and appends a new entry, then persists the collection. A
// nil date means today on the store's clock. Invalid UTF-8 in text is
// replaced with U+FFFD so the stored text survives a reload unchanged.
func (s *Store) Add(ctx context.Context, text string, m mood.Mood, on *entry.Date) (*entry.Entry, error) {
	text = strings.ToValidUTF8(text, string(utf8.RuneError))
	if err := entry.Validate(text, m); err != nil {
		s.log.Debug("rejected entry", zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	date := entry.DateOf(now)
	if on != nil && !on.IsZero() {
		date = *on
	}
	// createdAt is persisted at millisecond precision.
	created := now.UTC().Truncate(time.Millisecond)
	e := entry.New(s.newID(), m, text, date, created)

	next := make([]*entry.Entry, 0, len(s.entries)+1)
	next = append(next, s.entries...)
	next = append(next, e)
	if err := s.persist(ctx, "add", next); err != nil {
		return nil, err
	}
	s.entries = next
	s.log.Info("entry added", zap.String("id", e.ID), zap.String("mood", e.Mood.String()))
	return e.Clone(), nil
}

// Remove deletes the entry with id. Unknown ids are ignored without
// touching the slot.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.log.Debug("remove of unknown id", zap.String("id", id))
		return nil
	}

	next := make([]*entry.Entry, 0, len(s.entries)-1)
	next = append(next, s.entries[:idx]...)
	next = append(next, s.entries[idx+1:]...)
	if err := s.persist(ctx, "remove", next); err != nil {
		return err
	}
	s.entries = next
	s.log.Info("entry removed", zap.String("id", id))
	return nil
}

// Clear deletes every entry and persists an empty collection.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := []*entry.Entry{}
	if err := s.persist(ctx, "clear", next); err != nil {
		return err
	}
	removed := len(s.entries)
	s.entries = next
	s.log.Info("journal cleared", zap.Int("removed", removed))
	return nil
}

// Entries returns a copy of the current collection.
func (s *Store) Entries() []*entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entry.CloneAll(s.entries)
}

func (s *Store) Get(id string) (*entry.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.entries[idx].Clone(), true
	}
	return nil, false
}

// Len reports how many entries are held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Slot is the backing slot.
func (s *Store) Slot() store.Slot {
	return s.slot
}

func (s *Store) indexOf(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// persist writes next in full. The caller swaps it in only on success.
func (s *Store) persist(ctx context.Context, op string, next []*entry.Entry) error {
	data, err := entry.Encode(next)
	if err != nil {
		return &StorageError{Op: op, Err: err}
	}
	if err := s.slot.Write(ctx, data); err != nil {
		s.log.Error("persist failed", zap.String("op", op), zap.Error(err))
		return &StorageError{Op: op, Err: err}
	}
	return nil
}
