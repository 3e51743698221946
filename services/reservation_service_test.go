package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-frontdesk/models"
)

func TestCreateOrUpdate_CreatesReserved(t *testing.T) {
	svc, repo, pub := newTestService(t, nil)
	svc.NewID = func() string { return "rnew" }

	res, err := svc.CreateOrUpdate(context.Background(), models.ReservationForm{
		Guest:    "  Ana Ruiz ",
		RoomID:   "103",
		CheckIn:  date("2025-10-20"),
		CheckOut: date("2025-10-22"),
	})
	require.NoError(t, err)
	assert.Equal(t, "rnew", res.ID)
	assert.Equal(t, "Ana Ruiz", res.Guest)
	assert.Equal(t, models.StatusReserved, res.Status)

	snap := svc.Store.Snapshot()
	require.Len(t, snap.Reservations, 3)
	assert.Equal(t, res, snap.Reservations[2])
	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, []models.EventType{models.EventReservationCreated}, pub.types())
}

func TestCreateOrUpdate_KeepsFormStatus(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	res, err := svc.CreateOrUpdate(context.Background(), models.ReservationForm{
		Guest: "A", RoomID: "103", CheckIn: date("2025-10-20"), CheckOut: date("2025-10-21"),
		Status: models.StatusCancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, res.Status)
}

func TestCreateOrUpdate_RetriesIDCollision(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ids := []string{"r1", "r2", "r9"}
	svc.NewID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	res, err := svc.CreateOrUpdate(context.Background(), models.ReservationForm{
		Guest: "A", RoomID: "103", CheckIn: date("2025-10-20"), CheckOut: date("2025-10-21"),
	})
	require.NoError(t, err)
	assert.Equal(t, "r9", res.ID)
}

func TestCreateOrUpdate_ValidationLeavesStoreUnchanged(t *testing.T) {
	cases := []struct {
		name string
		form models.ReservationForm
		msg  string
	}{
		{
			name: "inverted dates",
			form: models.ReservationForm{Guest: "A", RoomID: "101", CheckIn: date("2025-10-16"), CheckOut: date("2025-10-14"), Status: models.StatusReserved},
			msg:  "checkout before checkin",
		},
		{
			name: "same day",
			form: models.ReservationForm{Guest: "A", RoomID: "101", CheckIn: date("2025-10-16"), CheckOut: date("2025-10-16")},
			msg:  "checkout before checkin",
		},
		{
			name: "empty guest",
			form: models.ReservationForm{Guest: "   ", RoomID: "101", CheckIn: date("2025-10-14"), CheckOut: date("2025-10-16")},
			msg:  "guest required",
		},
		{
			name: "missing checkin",
			form: models.ReservationForm{Guest: "A", RoomID: "101", CheckOut: date("2025-10-16")},
			msg:  "checkin required",
		},
		{
			name: "unknown status",
			form: models.ReservationForm{Guest: "A", RoomID: "101", CheckIn: date("2025-10-14"), CheckOut: date("2025-10-16"), Status: "lost"},
			msg:  `unknown reservation status "lost"`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, pub := newTestService(t, nil)
			before := svc.Store.Snapshot()

			_, err := svc.CreateOrUpdate(context.Background(), tc.form)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.EqualError(t, err, tc.msg)
			assert.Equal(t, before, svc.Store.Snapshot())
			assert.Zero(t, repo.saves)
			assert.Empty(t, pub.types())
		})
	}
}

func TestCreateOrUpdate_OverwritesWholesale(t *testing.T) {
	svc, _, pub := newTestService(t, nil)
	form := models.ReservationForm{
		ID:       "r1",
		Guest:    "María L.",
		RoomID:   "201",
		CheckIn:  date("2025-11-01"),
		CheckOut: date("2025-11-03"),
		Status:   models.StatusReserved,
	}
	res, err := svc.CreateOrUpdate(context.Background(), form)
	require.NoError(t, err)

	snap := svc.Store.Snapshot()
	require.Len(t, snap.Reservations, 2)
	assert.Equal(t, res, snap.Reservations[0])
	assert.Equal(t, "201", snap.Reservations[0].RoomID)
	assert.Equal(t, []models.EventType{models.EventReservationUpdated}, pub.types())
}

func TestCreateOrUpdate_UnknownIDIsNotFound(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	_, err := svc.CreateOrUpdate(context.Background(), models.ReservationForm{
		ID: "missing", Guest: "A", RoomID: "101", CheckIn: date("2025-10-14"), CheckOut: date("2025-10-16"),
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, svc.Store.Snapshot().Reservations, 2)
}

func TestCreateOrUpdate_CheckedInCannotBeEdited(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	_, err := svc.CreateOrUpdate(context.Background(), models.ReservationForm{
		ID: "r2", Guest: "John D.", RoomID: "102", CheckIn: date("2025-10-13"), CheckOut: date("2025-10-15"),
		Status: models.StatusCheckedIn,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, "John Doe", svc.Store.Snapshot().Reservations[1].Guest)
}

func TestCreateOrUpdate_OverlapIsAllowed(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	_, err := svc.CreateOrUpdate(context.Background(), models.ReservationForm{
		Guest: "Overlap", RoomID: "101", CheckIn: date("2025-10-14"), CheckOut: date("2025-10-16"),
	})
	require.NoError(t, err)
	assert.Len(t, ReservationsForRoom(svc.Store.Snapshot(), "101"), 2)
}

func TestCheckIn(t *testing.T) {
	svc, _, pub := newTestService(t, nil)
	res, err := svc.CheckIn(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, res.Status)
	assert.Equal(t, models.RoomOccupied, ResolveStatus(svc.Store.Snapshot(), "101", date("2030-01-01")))
	assert.Equal(t, []models.EventType{models.EventReservationCheckedIn}, pub.types())
}

func TestCheckIn_MissingIsNotFound(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)
	_, err := svc.CheckIn(context.Background(), "nope")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "reservation", nf.Kind)
	assert.Zero(t, repo.saves)
}

func TestLifecycle_TerminalStatesRejectTransitions(t *testing.T) {
	ctx := context.Background()
	snap := DefaultSnapshot()
	snap.Reservations = append(snap.Reservations,
		models.Reservation{ID: "r3", Guest: "C", RoomID: "103", CheckIn: date("2025-10-14"), CheckOut: date("2025-10-16"), Status: models.StatusCancelled},
		models.Reservation{ID: "r4", Guest: "D", RoomID: "201", CheckIn: date("2025-10-14"), CheckOut: date("2025-10-16"), Status: models.StatusCheckedOut},
	)
	svc, repo, _ := newTestService(t, &snap)

	for _, id := range []string{"r3", "r4"} {
		_, err := svc.CheckIn(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidTransition, "checkin %s", id)
		_, err = svc.CheckOut(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidTransition, "checkout %s", id)
		_, err = svc.Cancel(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidTransition, "cancel %s", id)
	}
	assert.Zero(t, repo.saves)
	assert.Equal(t, snap, svc.Store.Snapshot())
}

func TestCheckOut_RequiresCheckedIn(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	_, err := svc.CheckOut(context.Background(), "r1")
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, models.StatusReserved, te.From)
	assert.Equal(t, models.StatusCheckedOut, te.To)
	assert.Empty(t, svc.Store.Snapshot().Housekeeping)
}

func TestCheckOut_DirtiesRoomAtomically(t *testing.T) {
	ctx := context.Background()
	snap := DefaultSnapshot()
	snap.Reservations[1].RoomID = "101"
	svc, repo, pub := newTestService(t, &snap)

	res, err := svc.CheckOut(ctx, "r2")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedOut, res.Status)

	after := svc.Store.Snapshot()
	assert.Equal(t, models.StatusCheckedOut, after.Reservations[1].Status)
	assert.Equal(t, models.Dirty, after.Housekeeping["101"])

	// both changes land in the same persisted snapshot
	assert.Equal(t, 1, repo.saves)
	persisted, err := repo.MemoryRepository.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedOut, persisted.Reservations[1].Status)
	assert.Equal(t, models.Dirty, persisted.Housekeeping["101"])

	require.Len(t, pub.events, 1)
	assert.Equal(t, models.Dirty, pub.events[0].Housekeeping)
}

func TestCheckOut_SaveFailureAppliesNeither(t *testing.T) {
	svc, repo, pub := newTestService(t, nil)
	repo.failSave = true

	_, err := svc.CheckOut(context.Background(), "r2")
	assert.ErrorIs(t, err, ErrStorage)

	snap := svc.Store.Snapshot()
	assert.Equal(t, models.StatusCheckedIn, snap.Reservations[1].Status)
	assert.Empty(t, snap.Housekeeping)
	assert.Empty(t, pub.types())

	// the core keeps working once the backend recovers
	repo.failSave = false
	_, err = svc.CheckOut(context.Background(), "r2")
	assert.NoError(t, err)
}

func TestCancel(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	res, err := svc.Cancel(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, res.Status)
	assert.Equal(t, models.RoomAvailable, ResolveStatus(svc.Store.Snapshot(), "101", date("2025-10-14")))
}

func TestToggleHousekeeping_PairRestores(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, nil)

	first, err := svc.ToggleHousekeeping(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, models.Dirty, first)

	second, err := svc.ToggleHousekeeping(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, models.Clean, second)
	assert.Equal(t, models.Clean, svc.Store.Snapshot().Housekeeping.State("101"))
}

func TestToggleHousekeeping_FromDirty(t *testing.T) {
	snap := DefaultSnapshot()
	snap.Housekeeping["202"] = models.Dirty
	svc, _, _ := newTestService(t, &snap)

	st, err := svc.ToggleHousekeeping(context.Background(), "202")
	require.NoError(t, err)
	assert.Equal(t, models.Clean, st)

	st, err = svc.ToggleHousekeeping(context.Background(), "202")
	require.NoError(t, err)
	assert.Equal(t, models.Dirty, st)
}

func TestToggleHousekeeping_EmptyRoom(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	_, err := svc.ToggleHousekeeping(context.Background(), " ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDraft(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	today := date("2025-10-31")

	form, err := svc.Draft("", today)
	require.NoError(t, err)
	assert.Equal(t, "101", form.RoomID)
	assert.Equal(t, date("2025-11-01"), form.CheckOut)
	assert.Equal(t, models.StatusReserved, form.Status)

	form, err = svc.Draft("302", today)
	require.NoError(t, err)
	assert.Equal(t, "302", form.RoomID)

	_, err = svc.Draft("999", today)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDemo(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	res, err := svc.CreateDemo(context.Background(), date("2025-10-14"))
	require.NoError(t, err)
	assert.Equal(t, "Invitado", res.Guest)
	assert.Equal(t, "101", res.RoomID)
	assert.Equal(t, date("2025-10-15"), res.CheckOut)
	assert.Len(t, svc.Store.Snapshot().Reservations, 3)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	svc, _, pub := newTestService(t, nil)
	_, err := svc.ToggleHousekeeping(ctx, "101")
	require.NoError(t, err)

	snap, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSnapshot(), snap)
	assert.Equal(t, []models.EventType{models.EventHousekeepingToggled, models.EventDataReset}, pub.types())
}

func TestPublishFailureDoesNotFailMutation(t *testing.T) {
	svc, _, pub := newTestService(t, nil)
	pub.err = assert.AnError
	_, err := svc.CheckIn(context.Background(), "r1")
	assert.NoError(t, err)
}
