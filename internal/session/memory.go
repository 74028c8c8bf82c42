package session

import (
	"context"
	"sync"
	"time"

	"megacitycab/internal/models"
)

type memoryEntry struct {
	creds   models.Credentials
	expires time.Time
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryStore) Save(ctx context.Context, id string, creds *models.Credentials, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{creds: *creds}
	if ttl > 0 {
		entry.expires = m.now().Add(ttl)
	}
	m.entries[id] = entry
	m.sweepLocked()
	return nil
}

func (m *MemoryStore) Load(ctx context.Context, id string) (*models.Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !entry.expires.IsZero() && !m.now().Before(entry.expires) {
		delete(m.entries, id)
		return nil, ErrNotFound
	}

	creds := entry.creds
	return &creds, nil
}

func (m *MemoryStore) Clear(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// sweepLocked drops expired entries; callers hold the write lock.
func (m *MemoryStore) sweepLocked() {
	now := m.now()
	for id, entry := range m.entries {
		if !entry.expires.IsZero() && !now.Before(entry.expires) {
			delete(m.entries, id)
		}
	}
}
