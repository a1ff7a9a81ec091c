// Package store persists the serialized journal in a single named slot.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultSlotName is the slot the journal has always been saved under.
const DefaultSlotName = "mindtrackr_entries"

var (
	// ErrEmpty is returned by Slot.Read when nothing has been written yet.
	ErrEmpty = errors.New("store: slot is empty")

	// ErrQuotaExceeded is returned when a write is larger than the slot allows.
	ErrQuotaExceeded = errors.New("store: quota exceeded")

	// ErrClosed is returned by operations on a closed slot.
	ErrClosed = errors.New("store: slot closed")
)

// Slot is a single named location holding one opaque payload. Writes
// replace the payload entirely; there are no partial updates.
type Slot interface {
	Name() string
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Close() error
}

// Open builds the slot selected by cfg.
func Open(cfg Config) (Slot, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	name := cfg.SlotName()
	var (
		slot Slot
		err  error
	)
	switch b := cfg.Backend(); b {
	case BackendDiskv, "":
		slot, err = NewDiskvSlot(cfg.BasePath(), name)
	case BackendSQLite:
		slot, err = NewSQLiteSlot(filepath.Join(cfg.BasePath(), SQLiteFileName), name)
	case BackendMemory:
		slot = NewMemorySlot(name)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", b)
	}
	if err != nil {
		return nil, err
	}

	if q := cfg.Quota(); q > 0 {
		slot = WithQuota(slot, q)
	}
	return slot, nil
}

func validName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("store: slot name required")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("store: invalid slot name %q", name)
	}
	return nil
}
