package services

import "hotel-frontdesk/models"

// DefaultSnapshot is the dataset used when nothing usable is persisted.
func DefaultSnapshot() models.Snapshot {
	return models.Snapshot{
		Rooms: []models.Room{
			{ID: "101", Type: "Single", Floor: 1},
			{ID: "102", Type: "Double", Floor: 1},
			{ID: "103", Type: "Suite", Floor: 1},
			{ID: "201", Type: "Single", Floor: 2},
			{ID: "202", Type: "Double", Floor: 2},
			{ID: "203", Type: "Suite", Floor: 2},
			{ID: "301", Type: "Double", Floor: 3},
			{ID: "302", Type: "Single", Floor: 3},
		},
		Reservations: []models.Reservation{
			{
				ID:       "r1",
				Guest:    "María López",
				RoomID:   "101",
				CheckIn:  models.MustParseDate("2025-10-14"),
				CheckOut: models.MustParseDate("2025-10-16"),
				Status:   models.StatusReserved,
			},
			{
				ID:       "r2",
				Guest:    "John Doe",
				RoomID:   "102",
				CheckIn:  models.MustParseDate("2025-10-13"),
				CheckOut: models.MustParseDate("2025-10-15"),
				Status:   models.StatusCheckedIn,
			},
		},
		Housekeeping: models.Housekeeping{},
	}
}
