package models

// Room is keyed by its display number. Type is an open label ("Single",
// "Double", "Suite", ...) so new categories can arrive through data alone.
type Room struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Floor int    `json:"floor"`
}

// RoomStatus is derived on demand and never stored.
type RoomStatus string

const (
	RoomAvailable RoomStatus = "Available"
	RoomReserved  RoomStatus = "Reserved"
	RoomOccupied  RoomStatus = "Occupied"
	RoomDirty     RoomStatus = "Dirty"
)

// FilterAll disables a type or status filter.
const FilterAll = "All"

var roomStatuses = []RoomStatus{RoomAvailable, RoomReserved, RoomOccupied, RoomDirty}

// ParseRoomStatus accepts a status filter value, including "All" and "".
func ParseRoomStatus(s string) (RoomStatus, bool) {
	if s == "" || s == FilterAll {
		return RoomStatus(FilterAll), true
	}
	for _, st := range roomStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}
