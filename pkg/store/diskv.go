package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvSlot stores the payload as one file under a diskv base directory.
type DiskvSlot struct {
	mu       sync.Mutex
	d        *diskv.Diskv
	name     string
	basePath string
	closed   bool
}

var _ Slot = (*DiskvSlot)(nil)

// NewDiskvSlot opens (creating if needed) a diskv-backed slot under basePath.
func NewDiskvSlot(basePath, name string) (*DiskvSlot, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &DiskvSlot{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, tempDirName),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		name:     name,
		basePath: basePath,
	}, nil
}

const tempDirName = ".tmp"

func (s *DiskvSlot) Name() string {
	return s.name
}

// Path is the file holding the payload.
func (s *DiskvSlot) Path() string {
	return filepath.Join(s.basePath, s.name)
}

func (s *DiskvSlot) Read(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	if !s.d.Has(s.name) {
		return nil, ErrEmpty
	}
	// Bypass the cache so writes from another process are seen.
	rc, err := s.d.ReadStream(s.name, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("store: read %s: %w", s.name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", s.name, err)
	}
	return data, nil
}

func (s *DiskvSlot) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := s.d.Write(s.name, data); err != nil {
		return fmt.Errorf("store: write %s: %w", s.name, err)
	}
	return nil
}

func (s *DiskvSlot) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Slots are stored flat under the base path.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
