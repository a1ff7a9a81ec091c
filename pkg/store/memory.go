package store

import (
	"context"
	"sync"
)

// MemorySlot holds the payload in process memory. Nothing survives exit.
type MemorySlot struct {
	mu       sync.Mutex
	name     string
	data     []byte
	set      bool
	writes   int
	failWith error
	closed   bool
}

var _ Slot = (*MemorySlot)(nil)

func NewMemorySlot(name string) *MemorySlot {
	if name == "" {
		name = DefaultSlotName
	}
	return &MemorySlot{name: name}
}

func (s *MemorySlot) Name() string {
	return s.name
}

func (s *MemorySlot) Read(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	if !s.set {
		return nil, ErrEmpty
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemorySlot) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.failWith != nil {
		return s.failWith
	}
	s.data = append([]byte(nil), data...)
	s.set = true
	s.writes++
	return nil
}

func (s *MemorySlot) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Seed replaces the payload without counting as a write.
func (s *MemorySlot) Seed(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.set = true
}

// FailWrites makes every following Write return err. A nil err clears it.
func (s *MemorySlot) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// Writes reports how many writes have succeeded.
func (s *MemorySlot) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
