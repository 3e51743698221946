package services

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"hotel-frontdesk/models"
	"hotel-frontdesk/storage"
)

// EntityStore owns rooms, reservations and housekeeping flags. Every change
// goes through Update, which persists the whole snapshot before it becomes
// visible.
type EntityStore struct {
	repo storage.SnapshotRepository
	log  *zap.Logger

	mu    sync.Mutex
	state models.Snapshot
}

// NewEntityStore hydrates the store from repo, falling back to seed data.
func NewEntityStore(ctx context.Context, repo storage.SnapshotRepository, log *zap.Logger) *EntityStore {
	if log == nil {
		log = zap.NewNop()
	}
	s := &EntityStore{repo: repo, log: log.With(zap.String("component", "entity-store"))}
	s.state = s.Load(ctx)
	return s
}

// Load reads the persisted snapshot. Missing or malformed data, or a failing
// backend, yields the default dataset; it never returns an error.
func (s *EntityStore) Load(ctx context.Context) models.Snapshot {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSnapshotNotFound) {
			s.log.Info("no persisted snapshot, using seed data")
		} else {
			s.log.Warn("persisted snapshot unusable, using seed data", zap.Error(err))
		}
		return DefaultSnapshot()
	}
	return normalize(snap)
}

// Save persists snap, replacing any prior value.
func (s *EntityStore) Save(ctx context.Context, snap models.Snapshot) error {
	if err := s.repo.Save(ctx, snap); err != nil {
		s.log.Error("snapshot save failed", zap.Error(err))
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *EntityStore) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Update runs fn against a copy of the state. The copy replaces the current
// state only if fn and the save both succeed, so readers never observe a
// half-applied mutation.
func (s *EntityStore) Update(ctx context.Context, fn func(snap *models.Snapshot) error) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return models.Snapshot{}, err
	}
	if err := s.Save(ctx, next); err != nil {
		return models.Snapshot{}, err
	}
	s.state = next
	return next.Clone(), nil
}

// Reset replaces the state with the default dataset and persists it.
func (s *EntityStore) Reset(ctx context.Context) (models.Snapshot, error) {
	return s.Update(ctx, func(snap *models.Snapshot) error {
		*snap = DefaultSnapshot()
		return nil
	})
}

func normalize(snap models.Snapshot) models.Snapshot {
	if snap.Reservations == nil {
		snap.Reservations = []models.Reservation{}
	}
	if snap.Housekeeping == nil {
		snap.Housekeeping = models.Housekeeping{}
	}
	return snap
}
