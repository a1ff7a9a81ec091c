package store

import (
	"context"
	"fmt"
)

// DefaultQuota mirrors the per-origin budget browsers give local storage.
const DefaultQuota int64 = 5 * 1024 * 1024

type quotaSlot struct {
	Slot
	max int64
}

// WithQuota rejects writes larger than maxBytes before they reach slot.
func WithQuota(slot Slot, maxBytes int64) Slot {
	if maxBytes <= 0 {
		return slot
	}
	return &quotaSlot{Slot: slot, max: maxBytes}
}

func (q *quotaSlot) Write(ctx context.Context, data []byte) error {
	if n := int64(len(data)); n > q.max {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrQuotaExceeded, n, q.max)
	}
	return q.Slot.Write(ctx, data)
}

// Unwrap exposes the decorated slot.
func (q *quotaSlot) Unwrap() Slot {
	return q.Slot
}

// PathOf returns the on-disk location backing slot, or "" for memory slots.
func PathOf(slot Slot) string {
	for slot != nil {
		switch s := slot.(type) {
		case interface{ Path() string }:
			return s.Path()
		case interface{ Unwrap() Slot }:
			slot = s.Unwrap()
		default:
			return ""
		}
	}
	return ""
}
