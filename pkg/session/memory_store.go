package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore holds encoded sessions in process. Entries are encoded the same
// way RedisStore stores them so both stores share one decode path.
type MemoryStore struct {
	mu       sync.RWMutex
	entries  map[string][]byte
	duration time.Duration
	now      func() time.Time
}

func NewMemoryStore(duration time.Duration) *MemoryStore {
	return &MemoryStore{
		entries:  make(map[string][]byte),
		duration: duration,
		now:      time.Now,
	}
}

func (m *MemoryStore) Create(_ context.Context, s *Session) (*Session, error) {
	created := *s
	created.ID = uuid.NewString()
	created.CreatedAt = m.now()
	created.ExpiresAt = created.CreatedAt.Add(m.duration)
	raw, err := encode(&created)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.entries[created.ID] = raw
	m.mu.Unlock()
	return &created, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	raw, ok := m.entries[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	s, err := decode(raw)
	if err != nil {
		return nil, err
	}
	if s.Expired(m.now()) {
		m.mu.Lock()
		delete(m.entries, id)
		m.mu.Unlock()
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

// Put stores a raw payload under id. It exists for importing sessions and for tests.
func (m *MemoryStore) Put(id string, raw []byte) {
	m.mu.Lock()
	m.entries[id] = raw
	m.mu.Unlock()
}
