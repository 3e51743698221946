package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-frontdesk/models"
	"hotel-frontdesk/storage"
)

// flakyRepo wraps the memory repository and fails saves on demand.
type flakyRepo struct {
	*storage.MemoryRepository
	failSave bool
	failLoad bool
	saves    int
}

var errBackendDown = errors.New("backend down")

func (f *flakyRepo) Load(ctx context.Context) (models.Snapshot, error) {
	if f.failLoad {
		return models.Snapshot{}, errBackendDown
	}
	return f.MemoryRepository.Load(ctx)
}

func (f *flakyRepo) Save(ctx context.Context, snap models.Snapshot) error {
	if f.failSave {
		return errBackendDown
	}
	f.saves++
	return f.MemoryRepository.Save(ctx, snap)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.ReservationEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt models.ReservationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingPublisher) types() []models.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func newTestStore(t *testing.T, snap *models.Snapshot) (*EntityStore, *flakyRepo) {
	t.Helper()
	repo := &flakyRepo{MemoryRepository: storage.NewMemoryRepository()}
	if snap != nil {
		require.NoError(t, repo.MemoryRepository.Save(context.Background(), *snap))
	}
	return NewEntityStore(context.Background(), repo, zap.NewNop()), repo
}

func newTestService(t *testing.T, snap *models.Snapshot) (*ReservationService, *flakyRepo, *recordingPublisher) {
	t.Helper()
	store, repo := newTestStore(t, snap)
	pub := &recordingPublisher{}
	return NewReservationService(store, pub, zap.NewNop()), repo, pub
}

func date(s string) models.Date { return models.MustParseDate(s) }
