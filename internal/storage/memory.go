package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps the slot in process memory. Used by tests and as a
// last-resort backend when nothing durable is configured.
type MemoryStore struct {
	mu      sync.Mutex
	payload []byte

	// FailSave forces Save to return FailErr, for persistence-failure tests.
	FailSave bool
	FailErr  error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.payload == nil {
		return nil, ErrSlotEmpty
	}
	out := make([]byte, len(m.payload))
	copy(out, m.payload)
	return out, nil
}

func (m *MemoryStore) Save(ctx context.Context, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSave {
		return m.FailErr
	}
	m.payload = make([]byte, len(payload))
	copy(m.payload, payload)
	return nil
}

// Clear wipes the slot so the next Load reports ErrSlotEmpty.
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payload = nil
}
