package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-frontdesk/models"
	"hotel-frontdesk/storage"
)

func TestEntityStore_LoadMissingUsesSeed(t *testing.T) {
	store, _ := newTestStore(t, nil)
	snap := store.Snapshot()
	assert.Len(t, snap.Rooms, 8)
	assert.Len(t, snap.Reservations, 2)
	assert.Empty(t, snap.Housekeeping)
	assert.Equal(t, DefaultSnapshot(), snap)
}

func TestEntityStore_LoadMalformedUsesSeed(t *testing.T) {
	repo := storage.NewMemoryRepository()
	repo.SetRaw([]byte(`{"rooms": [ broken`))
	store := NewEntityStore(context.Background(), repo, zap.NewNop())
	assert.Equal(t, DefaultSnapshot(), store.Snapshot())
}

func TestEntityStore_LoadBackendErrorUsesSeed(t *testing.T) {
	repo := &flakyRepo{MemoryRepository: storage.NewMemoryRepository(), failLoad: true}
	store := NewEntityStore(context.Background(), repo, zap.NewNop())
	assert.Equal(t, DefaultSnapshot(), store.Snapshot())
}

func TestEntityStore_LoadFillsMissingHousekeeping(t *testing.T) {
	repo := storage.NewMemoryRepository()
	repo.SetRaw([]byte(`{"rooms":[{"id":"101","type":"Single","floor":1}],"reservations":[]}`))
	store := NewEntityStore(context.Background(), repo, zap.NewNop())
	snap := store.Snapshot()
	assert.NotNil(t, snap.Housekeeping)
	assert.Equal(t, []models.Room{{ID: "101", Type: "Single", Floor: 1}}, snap.Rooms)
}

func TestEntityStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, nil)

	original := store.Load(ctx)
	original.Housekeeping["203"] = models.Dirty
	require.NoError(t, store.Save(ctx, original))

	assert.Equal(t, original, store.Load(ctx))
}

func TestEntityStore_UpdateFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t, nil)
	before := store.Snapshot()

	repo.failSave = true
	_, err := store.Update(ctx, func(snap *models.Snapshot) error {
		snap.Housekeeping["101"] = models.Dirty
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, errBackendDown)
	assert.Equal(t, before, store.Snapshot())
}

func TestEntityStore_SnapshotIsACopy(t *testing.T) {
	store, _ := newTestStore(t, nil)
	snap := store.Snapshot()
	snap.Reservations[0].Guest = "changed"
	snap.Housekeeping["101"] = models.Dirty

	fresh := store.Snapshot()
	assert.Equal(t, "María López", fresh.Reservations[0].Guest)
	assert.Empty(t, fresh.Housekeeping)
}

func TestEntityStore_Reset(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t, nil)
	_, err := store.Update(ctx, func(snap *models.Snapshot) error {
		snap.Reservations = nil
		return nil
	})
	require.NoError(t, err)

	snap, err := store.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSnapshot(), snap)

	persisted, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSnapshot(), persisted)
}
