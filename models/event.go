package models

import "time"

type EventType string

const (
	EventReservationCreated    EventType = "reservation.created"
	EventReservationUpdated    EventType = "reservation.updated"
	EventReservationCheckedIn  EventType = "reservation.checked_in"
	EventReservationCheckedOut EventType = "reservation.checked_out"
	EventReservationCancelled  EventType = "reservation.cancelled"
	EventHousekeepingToggled   EventType = "housekeeping.toggled"
	EventDataReset             EventType = "data.reset"
)

// ReservationEvent announces a committed mutation to downstream consumers.
type ReservationEvent struct {
	Type         EventType         `json:"type"`
	RoomID       string            `json:"roomId,omitempty"`
	Reservation  *Reservation      `json:"reservation,omitempty"`
	Housekeeping HousekeepingState `json:"housekeeping,omitempty"`
	OccurredAt   time.Time         `json:"occurredAt"`
}
