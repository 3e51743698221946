package models

// Snapshot is the full persisted application state, always read and written
// as one unit.
type Snapshot struct {
	Rooms        []Room        `json:"rooms"`
	Reservations []Reservation `json:"reservations"`
	Housekeeping Housekeeping  `json:"housekeeping"`
}

// Clone returns a deep copy so callers can mutate it without touching the
// store's current state.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Rooms:        make([]Room, len(s.Rooms)),
		Reservations: make([]Reservation, len(s.Reservations)),
		Housekeeping: make(Housekeeping, len(s.Housekeeping)),
	}
	copy(out.Rooms, s.Rooms)
	copy(out.Reservations, s.Reservations)
	for k, v := range s.Housekeeping {
		out.Housekeeping[k] = v
	}
	return out
}

func (s Snapshot) Room(id string) (Room, bool) {
	for _, r := range s.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// ReservationIndex returns the position of the reservation with id, or -1.
func (s Snapshot) ReservationIndex(id string) int {
	for i := range s.Reservations {
		if s.Reservations[i].ID == id {
			return i
		}
	}
	return -1
}
