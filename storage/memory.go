package storage

import (
	"context"
	"sync"

	"hotel-frontdesk/models"
)

// MemoryRepository keeps the encoded snapshot in process. It round-trips
// through JSON like the durable backends do.
type MemoryRepository struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Load(ctx context.Context) (models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	return DecodeSnapshot(m.data)
}

func (m *MemoryRepository) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}

// SetRaw stores an arbitrary payload, used to simulate corrupted state.
func (m *MemoryRepository) SetRaw(raw []byte) {
	m.mu.Lock()
	m.data = raw
	m.mu.Unlock()
}

func (m *MemoryRepository) Close() error { return nil }
