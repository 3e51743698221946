package models

import (
	"fmt"
	"strings"
)

type ReservationStatus string

const (
	StatusReserved   ReservationStatus = "reserved"
	StatusCheckedIn  ReservationStatus = "checked-in"
	StatusCheckedOut ReservationStatus = "checked-out"
	StatusCancelled  ReservationStatus = "cancelled"
)

func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch st := ReservationStatus(strings.TrimSpace(s)); st {
	case StatusReserved, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("unknown reservation status %q", s)
	}
}

// Terminal reports whether no lifecycle transition leaves this status.
func (s ReservationStatus) Terminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

func (s ReservationStatus) String() string { return string(s) }

// UnmarshalText rejects anything outside the closed set, so bad values never
// reach the store from a form or a persisted snapshot. Empty stays empty and
// is defaulted by the lifecycle manager.
func (s *ReservationStatus) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*s = ""
		return nil
	}
	st, err := ParseReservationStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Reservation references a room by id. The room may not exist; readers must
// tolerate a dangling RoomID.
type Reservation struct {
	ID       string            `json:"id"`
	Guest    string            `json:"guest"`
	RoomID   string            `json:"roomId"`
	CheckIn  Date              `json:"checkIn"`
	CheckOut Date              `json:"checkOut"`
	Status   ReservationStatus `json:"status"`
}

// ReservationForm is the create/edit payload. An empty ID means create.
type ReservationForm struct {
	ID       string            `json:"id,omitempty"`
	Guest    string            `json:"guest"`
	RoomID   string            `json:"roomId"`
	CheckIn  Date              `json:"checkIn"`
	CheckOut Date              `json:"checkOut"`
	Status   ReservationStatus `json:"status,omitempty"`
}
