package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
)

// LogKey is the key under which the whole share log is stored.
const LogKey = "shareLog"

// FileStore keeps the share log as one JSON array in <dir>/shareLog.json.
// Every append reads the array, appends, trims to capacity and rewrites the
// file in full. The mutex serializes writers within one process only.
type FileStore struct {
	mu       sync.Mutex
	path     string
	capacity int
}

// NewFileStore creates a file store in dir, creating the directory if needed.
func NewFileStore(dir string, capacity int) (*FileStore, error) {
	if dir == "" {
		return nil, domain.NewValidationError("store.path", "directory is required")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	return &FileStore{
		path:     filepath.Join(dir, LogKey+".json"),
		capacity: normalizeCapacity(capacity),
	}, nil
}

// Path returns the file backing the log.
func (s *FileStore) Path() string { return s.path }

// Append implements ports.ShareLogStore. A corrupted file is left untouched.
func (s *FileStore) Append(_ context.Context, entry domain.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}

	return s.write(domain.AppendCapped(entries, entry, s.capacity))
}

// List implements ports.ShareLogStore.
func (s *FileStore) List(_ context.Context) ([]domain.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

// Clear implements ports.ShareLogStore by removing the key entirely.
func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return domain.WrapUnavailable(ServiceName, fmt.Errorf("clearing log: %w", err))
	}

	return nil
}

// Capacity implements ports.ShareLogStore.
func (s *FileStore) Capacity() int { return s.capacity }

// Name implements ports.HealthChecker.
func (s *FileStore) Name() string { return ServiceName }

// Check implements ports.HealthChecker: the log must be readable and parse.
func (s *FileStore) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := s.List(ctx)

	return err
}

// Close implements io.Closer.
func (s *FileStore) Close() error { return nil }

// read loads the log. A missing file is an empty log.
func (s *FileStore) read() ([]domain.LogEntry, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.LogEntry{}, nil
	}

	if err != nil {
		return nil, domain.WrapUnavailable(ServiceName, fmt.Errorf("reading log: %w", err))
	}

	var entries []domain.LogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, domain.WrapUnavailable(ServiceName, fmt.Errorf("decoding log %s: %w", s.path, err))
	}

	if entries == nil {
		entries = []domain.LogEntry{}
	}

	return entries, nil
}

// write replaces the log file atomically.
func (s *FileStore) write(entries []domain.LogEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding log: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), LogKey+".*.tmp")
	if err != nil {
		return domain.WrapUnavailable(ServiceName, fmt.Errorf("writing log: %w", err))
	}

	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op once renamed

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return domain.WrapUnavailable(ServiceName, fmt.Errorf("writing log: %w", err))
	}

	if err := tmp.Close(); err != nil {
		return domain.WrapUnavailable(ServiceName, fmt.Errorf("writing log: %w", err))
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return domain.WrapUnavailable(ServiceName, fmt.Errorf("replacing log: %w", err))
	}

	return nil
}
