package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"
)

const maxIDAttempts = 5

// ReservationService applies reservation and housekeeping mutations to the
// entity store, enforcing the lifecycle rules.
type ReservationService struct {
	Store  *EntityStore
	Events EventPublisher
	Log    *zap.Logger

	NewID func() string
	Now   func() time.Time
}

func NewReservationService(store *EntityStore, events EventPublisher, log *zap.Logger) *ReservationService {
	if events == nil {
		events = NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ReservationService{
		Store:  store,
		Events: events,
		Log:    log.With(zap.String("component", "reservations")),
		NewID:  utils.GenerateReservationID,
		Now:    time.Now,
	}
}

// ValidateForm checks a form without touching the store.
func ValidateForm(form models.ReservationForm) error {
	if strings.TrimSpace(form.Guest) == "" {
		return validationErr("guest required")
	}
	if form.CheckIn.IsZero() {
		return validationErr("checkin required")
	}
	if form.CheckOut.IsZero() {
		return validationErr("checkout required")
	}
	if !form.CheckOut.After(form.CheckIn) {
		return validationErr("checkout before checkin")
	}
	if form.Status != "" {
		if _, err := models.ParseReservationStatus(string(form.Status)); err != nil {
			return validationErr(err.Error())
		}
	}
	return nil
}

// CreateOrUpdate appends a new reservation when form.ID is empty, otherwise
// overwrites the reservation with that id wholesale. Overlapping stays on the
// same room are allowed.
func (s *ReservationService) CreateOrUpdate(ctx context.Context, form models.ReservationForm) (models.Reservation, error) {
	op := "update"
	if form.ID == "" {
		op = "create"
	}
	res, err := s.createOrUpdate(ctx, form)
	observe(op, err)
	if err != nil {
		return models.Reservation{}, err
	}

	evt := models.EventReservationUpdated
	if op == "create" {
		evt = models.EventReservationCreated
	}
	s.publish(ctx, models.ReservationEvent{Type: evt, RoomID: res.RoomID, Reservation: &res})
	return res, nil
}

func (s *ReservationService) createOrUpdate(ctx context.Context, form models.ReservationForm) (models.Reservation, error) {
	if err := ValidateForm(form); err != nil {
		return models.Reservation{}, err
	}
	res := models.Reservation{
		ID:       form.ID,
		Guest:    strings.TrimSpace(form.Guest),
		RoomID:   strings.TrimSpace(form.RoomID),
		CheckIn:  form.CheckIn,
		CheckOut: form.CheckOut,
		Status:   form.Status,
	}
	if res.Status == "" {
		res.Status = models.StatusReserved
	}

	_, err := s.Store.Update(ctx, func(snap *models.Snapshot) error {
		if res.ID == "" {
			id, err := s.freshID(*snap)
			if err != nil {
				return err
			}
			res.ID = id
			snap.Reservations = append(snap.Reservations, res)
			return nil
		}
		idx := snap.ReservationIndex(res.ID)
		if idx < 0 {
			return &NotFoundError{Kind: "reservation", ID: res.ID}
		}
		// a guest in the room has to be checked out before the stay is edited
		if cur := snap.Reservations[idx]; cur.Status == models.StatusCheckedIn {
			return &TransitionError{ID: cur.ID, From: cur.Status, To: res.Status}
		}
		snap.Reservations[idx] = res
		return nil
	})
	if err != nil {
		return models.Reservation{}, err
	}
	return res, nil
}

func (s *ReservationService) freshID(snap models.Snapshot) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.NewID()
		if snap.ReservationIndex(id) < 0 {
			return id, nil
		}
		s.Log.Debug("reservation id collision, retrying", zap.String("id", id), zap.Int("attempt", attempt+1))
	}
	return "", fmt.Errorf("no unique reservation id after %d attempts", maxIDAttempts)
}

// CheckIn moves a reserved stay to checked-in.
func (s *ReservationService) CheckIn(ctx context.Context, id string) (models.Reservation, error) {
	res, err := s.transition(ctx, id, models.StatusReserved, models.StatusCheckedIn, nil)
	observe("checkin", err)
	if err != nil {
		return models.Reservation{}, err
	}
	s.publish(ctx, models.ReservationEvent{Type: models.EventReservationCheckedIn, RoomID: res.RoomID, Reservation: &res})
	return res, nil
}

// CheckOut moves a checked-in stay to checked-out and marks its room dirty in
// the same update.
func (s *ReservationService) CheckOut(ctx context.Context, id string) (models.Reservation, error) {
	res, err := s.transition(ctx, id, models.StatusCheckedIn, models.StatusCheckedOut, func(snap *models.Snapshot, r models.Reservation) {
		snap.Housekeeping[r.RoomID] = models.Dirty
	})
	observe("checkout", err)
	if err != nil {
		return models.Reservation{}, err
	}
	s.publish(ctx, models.ReservationEvent{
		Type:         models.EventReservationCheckedOut,
		RoomID:       res.RoomID,
		Reservation:  &res,
		Housekeeping: models.Dirty,
	})
	return res, nil
}

// Cancel moves a reserved stay to cancelled.
func (s *ReservationService) Cancel(ctx context.Context, id string) (models.Reservation, error) {
	res, err := s.transition(ctx, id, models.StatusReserved, models.StatusCancelled, nil)
	observe("cancel", err)
	if err != nil {
		return models.Reservation{}, err
	}
	s.publish(ctx, models.ReservationEvent{Type: models.EventReservationCancelled, RoomID: res.RoomID, Reservation: &res})
	return res, nil
}

func (s *ReservationService) transition(
	ctx context.Context,
	id string,
	from, to models.ReservationStatus,
	side func(snap *models.Snapshot, r models.Reservation),
) (models.Reservation, error) {
	var out models.Reservation
	_, err := s.Store.Update(ctx, func(snap *models.Snapshot) error {
		idx := snap.ReservationIndex(id)
		if idx < 0 {
			return &NotFoundError{Kind: "reservation", ID: id}
		}
		cur := snap.Reservations[idx]
		if cur.Status != from {
			return &TransitionError{ID: id, From: cur.Status, To: to}
		}
		cur.Status = to
		snap.Reservations[idx] = cur
		if side != nil {
			side(snap, cur)
		}
		out = cur
		return nil
	})
	return out, err
}

// ToggleHousekeeping flips a room between clean and dirty; an unseen room
// counts as clean, so the first toggle makes it dirty.
func (s *ReservationService) ToggleHousekeeping(ctx context.Context, roomID string) (models.HousekeepingState, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		err := validationErr("room id required")
		observe("housekeeping", err)
		return "", err
	}
	var next models.HousekeepingState
	_, err := s.Store.Update(ctx, func(snap *models.Snapshot) error {
		next = models.Dirty
		if snap.Housekeeping.State(roomID) == models.Dirty {
			next = models.Clean
		}
		snap.Housekeeping[roomID] = next
		return nil
	})
	observe("housekeeping", err)
	if err != nil {
		return "", err
	}
	s.publish(ctx, models.ReservationEvent{Type: models.EventHousekeepingToggled, RoomID: roomID, Housekeeping: next})
	return next, nil
}

// Draft returns the defaults for a new reservation form: the given room (or
// the first room), staying one night from today.
func (s *ReservationService) Draft(roomID string, today models.Date) (models.ReservationForm, error) {
	snap := s.Store.Snapshot()
	if roomID == "" {
		if len(snap.Rooms) == 0 {
			return models.ReservationForm{}, validationErr("no rooms available")
		}
		roomID = snap.Rooms[0].ID
	} else if _, ok := snap.Room(roomID); !ok {
		return models.ReservationForm{}, &NotFoundError{Kind: "room", ID: roomID}
	}
	return models.ReservationForm{
		RoomID:   roomID,
		CheckIn:  today,
		CheckOut: today.AddDays(1),
		Status:   models.StatusReserved,
	}, nil
}

// CreateDemo books a one-night placeholder guest into the first room.
func (s *ReservationService) CreateDemo(ctx context.Context, today models.Date) (models.Reservation, error) {
	form, err := s.Draft("", today)
	if err != nil {
		return models.Reservation{}, err
	}
	form.Guest = "Invitado"
	return s.CreateOrUpdate(ctx, form)
}

// Reset restores the seed dataset.
func (s *ReservationService) Reset(ctx context.Context) (models.Snapshot, error) {
	snap, err := s.Store.Reset(ctx)
	observe("reset", err)
	if err != nil {
		return models.Snapshot{}, err
	}
	s.Log.Info("data reset to seed")
	s.publish(ctx, models.ReservationEvent{Type: models.EventDataReset})
	return snap, nil
}

func (s *ReservationService) publish(ctx context.Context, evt models.ReservationEvent) {
	evt.OccurredAt = s.Now().UTC()
	if err := s.Events.Publish(ctx, evt); err != nil {
		s.Log.Warn("event publish failed", zap.String("type", string(evt.Type)), zap.Error(err))
	}
}
