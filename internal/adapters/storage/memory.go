package storage

import (
	"context"
	"sync"

	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
)

// MemoryStore keeps the share log in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	entries  []domain.LogEntry
	capacity int
}

// NewMemoryStore creates an empty in-memory log.
func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{capacity: normalizeCapacity(capacity)}
}

// Append implements ports.ShareLogStore.
func (s *MemoryStore) Append(_ context.Context, entry domain.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = domain.AppendCapped(s.entries, entry, s.capacity)

	return nil
}

// List implements ports.ShareLogStore.
func (s *MemoryStore) List(_ context.Context) ([]domain.LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LogEntry, len(s.entries))
	copy(out, s.entries)

	return out, nil
}

// Clear implements ports.ShareLogStore.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil

	return nil
}

// Capacity implements ports.ShareLogStore.
func (s *MemoryStore) Capacity() int { return s.capacity }

// Name implements ports.HealthChecker.
func (s *MemoryStore) Name() string { return ServiceName }

// Check implements ports.HealthChecker. Memory is always available.
func (s *MemoryStore) Check(ctx context.Context) error { return ctx.Err() }

// Close implements io.Closer.
func (s *MemoryStore) Close() error { return nil }
