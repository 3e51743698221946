// Package storage holds the snapshot repositories the entity store persists
// through. Every backend stores one JSON document under one key.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hotel-frontdesk/models"
)

// SnapshotKey is the single key every backend stores the state under.
const SnapshotKey = "hotel_data"

// ErrSnapshotNotFound is returned by Load when nothing has been saved yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository loads and saves the full application snapshot.
type SnapshotRepository interface {
	Load(ctx context.Context) (models.Snapshot, error)
	Save(ctx context.Context, snap models.Snapshot) error
	Close() error
}

// DecodeSnapshot parses a persisted payload. Unknown statuses and bad dates
// are errors so that callers can fall back to seed data.
func DecodeSnapshot(raw []byte) (models.Snapshot, error) {
	if len(raw) == 0 {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Rooms == nil {
		return models.Snapshot{}, errors.New("decode snapshot: rooms missing")
	}
	return snap, nil
}

func EncodeSnapshot(snap models.Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}
