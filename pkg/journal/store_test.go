package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/mood"
	"tableflip.dev/mindtrackr/pkg/store"
)

var fixedNow = time.Date(2024, 3, 14, 9, 26, 53, 589000000, time.UTC)

func newTestStore(t *testing.T, slot store.Slot) *Store {
	t.Helper()
	n := 0
	s := New(slot,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
	s.Load(context.Background())
	return s
}

func TestAddScenario(t *testing.T) {
	slot := store.NewMemorySlot("")
	s := newTestStore(t, slot)

	e, err := s.Add(context.Background(), "  Had a great day!  ", mood.Happy, nil)
	require.NoError(t, err)
	assert.Equal(t, "Had a great day!", e.Text)
	assert.Equal(t, mood.Happy, e.Mood)
	assert.Equal(t, "id-1", e.ID)
	assert.Equal(t, entry.Date{Year: 2024, Month: time.March, Day: 14}, e.Date)
	assert.True(t, e.CreatedAt.Equal(fixedNow))

	all := s.Entries()
	require.Len(t, all, 1)
	assert.Equal(t, 1, slot.Writes())
}

func TestAddExplicitDate(t *testing.T) {
	s := newTestStore(t, store.NewMemorySlot(""))
	on := entry.Date{Year: 2023, Month: time.December, Day: 31}

	e, err := s.Add(context.Background(), "looking back", mood.Calm, &on)
	require.NoError(t, err)
	assert.Equal(t, on, e.Date)
	assert.True(t, e.CreatedAt.Equal(fixedNow), "createdAt is the instant of creation, not the entry date")
}

func TestAddRejectsInvalid(t *testing.T) {
	slot := store.NewMemorySlot("")
	s := newTestStore(t, slot)

	_, err := s.Add(context.Background(), "hi", mood.Happy, nil)
	var verr *entry.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, entry.ReasonTooShort, verr.Reason)

	_, err = s.Add(context.Background(), "Had a great day!", mood.Mood("Confused"), nil)
	require.ErrorIs(t, err, entry.ErrValidation)

	_, err = s.Add(context.Background(), strings.Repeat("a", 2001), mood.Sad, nil)
	require.ErrorIs(t, err, entry.ErrValidation)

	assert.Empty(t, s.Entries())
	assert.Zero(t, slot.Writes())
}

func TestRemove(t *testing.T) {
	slot := store.NewMemorySlot("")
	s := newTestStore(t, slot)

	e, err := s.Add(context.Background(), "Had a great day!", mood.Happy, nil)
	require.NoError(t, err)

	require.NoError(t, s.Remove(context.Background(), "nope"))
	assert.Equal(t, 1, slot.Writes(), "unknown id must not write")
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Remove(context.Background(), e.ID))
	assert.Empty(t, s.Entries())
	assert.Equal(t, 2, slot.Writes())

	_, ok := s.Get(e.ID)
	assert.False(t, ok)
}

func TestRoundTripFidelity(t *testing.T) {
	ctx := context.Background()
	slot := store.NewMemorySlot("")
	s := newTestStore(t, slot)

	a, err := s.Add(ctx, "first entry", mood.Happy, nil)
	require.NoError(t, err)
	_, err = s.Add(ctx, "second entry", mood.Sad, nil)
	require.NoError(t, err)
	_, err = s.Add(ctx, "third entry", mood.Excited, nil)
	require.NoError(t, err)
	require.NoError(t, s.Remove(ctx, a.ID))

	want := s.Entries()
	got := New(slot).Load(ctx)

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Date, got[i].Date)
		assert.Equal(t, want[i].Mood, got[i].Mood)
		assert.Equal(t, want[i].Text, got[i].Text)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt.Time))
	}
}

func TestRoundTripSubMillisecondClock(t *testing.T) {
	ctx := context.Background()
	slot := store.NewMemorySlot("")
	clock := time.Date(2024, 3, 14, 9, 26, 53, 589123456, time.UTC)
	s := New(slot, WithClock(func() time.Time { return clock }))

	e, err := s.Add(ctx, "late night thoughts", mood.Calm, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 14, 9, 26, 53, 589000000, time.UTC), e.CreatedAt.Time)

	got := New(slot).Load(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, s.Entries(), got)
}

func TestAddReplacesInvalidUTF8(t *testing.T) {
	ctx := context.Background()
	slot := store.NewMemorySlot("")
	s := newTestStore(t, slot)

	e, err := s.Add(ctx, "ab\xff", mood.Happy, nil)
	require.NoError(t, err)
	assert.Equal(t, "ab�", e.Text)

	got := New(slot).Load(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, e.Text, got[0].Text)
}

func TestLoadDropsInvalidMood(t *testing.T) {
	slot := store.NewMemorySlot("")
	slot.Seed([]byte(`[
		{"id":"ok","date":"2024-03-01","mood":"Happy","text":"Had a great day!","createdAt":"2024-03-01T10:00:00.000Z"},
		{"id":"bad","date":"2024-03-01","mood":"Confused","text":"Not sure","createdAt":"2024-03-01T11:00:00.000Z"}
	]`))

	s := New(slot)
	got := s.Load(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].ID)

	warnings := s.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, 1, warnings[0].Index)
	assert.Equal(t, "bad", warnings[0].ID)
}

func TestLoadDegrades(t *testing.T) {
	tests := []struct {
		name     string
		slot     store.Slot
		warnings int
	}{{
		name: "empty slot",
		slot: store.NewMemorySlot(""),
	}, {
		name: "not json",
		slot: func() store.Slot {
			m := store.NewMemorySlot("")
			m.Seed([]byte(`{{{`))
			return m
		}(),
		warnings: 1,
	}, {
		name: "object instead of array",
		slot: func() store.Slot {
			m := store.NewMemorySlot("")
			m.Seed([]byte(`{"id":"a"}`))
			return m
		}(),
		warnings: 1,
	}, {
		name:     "read failure",
		slot:     failingReader{store.NewMemorySlot("")},
		warnings: 1,
	}}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.slot)
			got := s.Load(context.Background())
			assert.NotNil(t, got)
			assert.Empty(t, got)
			assert.Len(t, s.Warnings(), tc.warnings)
			if tc.warnings > 0 {
				assert.Equal(t, WholePayload, s.Warnings()[0].Index)
			}
		})
	}
}

func TestLoadLegacyRecords(t *testing.T) {
	slot := store.NewMemorySlot("")
	slot.Seed([]byte(`[{"id":1700000000000,"date":"2023-11-14","mood":"Stressed","text":"deadline week"}]`))

	s := New(slot)
	got := s.Load(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, entry.LegacyIDPrefix+"1700000000000", got[0].ID)

	// Legacy entries can be removed by their converted id.
	require.NoError(t, s.Remove(context.Background(), got[0].ID))
	assert.Equal(t, "[]", string(mustRead(t, slot)))
}

func TestPersistFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemorySlot("")
	s := newTestStore(t, store.WithQuota(mem, 256))

	keep, err := s.Add(ctx, "fits in the quota", mood.Calm, nil)
	require.NoError(t, err)

	_, err = s.Add(ctx, strings.Repeat("x", 400), mood.Angry, nil)
	require.ErrorIs(t, err, ErrStorage)
	require.ErrorIs(t, err, store.ErrQuotaExceeded)
	var serr *StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "add", serr.Op)
	require.Len(t, s.Entries(), 1)

	boom := errors.New("disk full")
	mem.FailWrites(boom)

	err = s.Remove(ctx, keep.ID)
	require.ErrorIs(t, err, boom)
	_, ok := s.Get(keep.ID)
	assert.True(t, ok, "failed remove must keep the entry")

	require.ErrorIs(t, s.Clear(ctx), ErrStorage)
	assert.Equal(t, 1, s.Len())

	// The slot still holds what was last written successfully.
	reloaded := New(mem).Load(ctx)
	require.Len(t, reloaded, 1)
	assert.Equal(t, keep.ID, reloaded[0].ID)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	slot := store.NewMemorySlot("")
	s := newTestStore(t, slot)

	for _, m := range mood.All() {
		_, err := s.Add(ctx, "feeling "+m.String(), m, nil)
		require.NoError(t, err)
	}
	require.Equal(t, 6, s.Len())

	require.NoError(t, s.Clear(ctx))
	assert.Zero(t, s.Len())
	assert.Equal(t, "[]", string(mustRead(t, slot)))
}

func TestCallersGetCopies(t *testing.T) {
	s := newTestStore(t, store.NewMemorySlot(""))
	e, err := s.Add(context.Background(), "original text", mood.Happy, nil)
	require.NoError(t, err)

	e.Text = "mutated"
	s.Entries()[0].Mood = mood.Sad

	got, ok := s.Get(e.ID)
	require.True(t, ok)
	assert.Equal(t, "original text", got.Text)
	assert.Equal(t, mood.Happy, got.Mood)
}

func TestConcurrentAdds(t *testing.T) {
	s := New(store.NewMemorySlot(""))
	s.Load(context.Background())

	const n = 20
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			_, err := s.Add(context.Background(), fmt.Sprintf("entry number %d", i), mood.Calm, nil)
			errs <- err
		}(i)
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-errs)
	}
	assert.Equal(t, n, s.Len())
	assert.Len(t, New(s.Slot()).Load(context.Background()), n)
}

type failingReader struct {
	*store.MemorySlot
}

func (failingReader) Read(context.Context) ([]byte, error) {
	return nil, errors.New("permission denied")
}

func mustRead(t *testing.T, slot store.Slot) []byte {
	t.Helper()
	data, err := slot.Read(context.Background())
	require.NoError(t, err)
	return data
}
