package services

import "hotel-frontdesk/models"

// ResolveStatus derives a room's headline status at ref. First match wins:
// a checked-in stay (any date), then a reserved stay whose [checkIn, checkOut)
// contains ref, then a dirty flag, else Available.
func ResolveStatus(snap models.Snapshot, roomID string, ref models.Date) models.RoomStatus {
	for _, r := range snap.Reservations {
		if r.RoomID == roomID && r.Status == models.StatusCheckedIn {
			return models.RoomOccupied
		}
	}
	for _, r := range snap.Reservations {
		if r.RoomID == roomID && r.Status == models.StatusReserved && ref.Within(r.CheckIn, r.CheckOut) {
			return models.RoomReserved
		}
	}
	if snap.Housekeeping.State(roomID) == models.Dirty {
		return models.RoomDirty
	}
	return models.RoomAvailable
}
