package services

import (
	"sort"
	"strings"

	"hotel-frontdesk/models"
)

// RoomFilter carries the three room predicates. Empty or "All" disables Type
// and Status; empty Search matches everything.
type RoomFilter struct {
	Type   string `form:"type"`
	Status string `form:"status"`
	Search string `form:"q"`
}

// RoomView is a room with its derived status, as the dashboard renders it.
type RoomView struct {
	models.Room
	Status       models.RoomStatus        `json:"status"`
	Housekeeping models.HousekeepingState `json:"housekeeping"`
}

type RoomDetail struct {
	RoomView
	Reservations []models.Reservation `json:"reservations"`
}

type Dashboard struct {
	Rooms    []RoomView           `json:"rooms"`
	Shown    int                  `json:"shown"`
	Total    int                  `json:"total"`
	Types    []string             `json:"types"`
	Upcoming []models.Reservation `json:"upcoming"`
}

// FilterRooms returns the rooms, in original order, that pass all of the
// filter's predicates at ref.
func FilterRooms(snap models.Snapshot, f RoomFilter, ref models.Date) []models.Room {
	q := strings.ToLower(f.Search)
	out := make([]models.Room, 0, len(snap.Rooms))
	for _, room := range snap.Rooms {
		if f.Type != "" && f.Type != models.FilterAll && room.Type != f.Type {
			continue
		}
		if f.Status != "" && f.Status != models.FilterAll && string(ResolveStatus(snap, room.ID, ref)) != f.Status {
			continue
		}
		if q != "" && !matchesSearch(snap, room, q) {
			continue
		}
		out = append(out, room)
	}
	return out
}

func matchesSearch(snap models.Snapshot, room models.Room, q string) bool {
	if strings.Contains(strings.ToLower(room.ID), q) {
		return true
	}
	for _, r := range snap.Reservations {
		if r.RoomID == room.ID && strings.Contains(strings.ToLower(r.Guest), q) {
			return true
		}
	}
	return false
}

// UpcomingReservations returns every reservation ordered by check-in date;
// ties keep their store order.
func UpcomingReservations(list []models.Reservation) []models.Reservation {
	out := make([]models.Reservation, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CheckIn.Before(out[j].CheckIn)
	})
	return out
}

// RoomTypes lists distinct room types in first-seen order.
func RoomTypes(snap models.Snapshot) []string {
	seen := make(map[string]bool, len(snap.Rooms))
	types := []string{}
	for _, r := range snap.Rooms {
		if !seen[r.Type] {
			seen[r.Type] = true
			types = append(types, r.Type)
		}
	}
	return types
}

func ReservationsForRoom(snap models.Snapshot, roomID string) []models.Reservation {
	out := []models.Reservation{}
	for _, r := range snap.Reservations {
		if r.RoomID == roomID {
			out = append(out, r)
		}
	}
	return out
}

func BuildRoomViews(snap models.Snapshot, rooms []models.Room, ref models.Date) []RoomView {
	views := make([]RoomView, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, RoomView{
			Room:         room,
			Status:       ResolveStatus(snap, room.ID, ref),
			Housekeeping: snap.Housekeeping.State(room.ID),
		})
	}
	return views
}

// QueryService answers read requests from the current store contents. It
// never caches; every call re-derives from a fresh snapshot.
type QueryService struct {
	Store *EntityStore
}

func NewQueryService(store *EntityStore) *QueryService {
	return &QueryService{Store: store}
}

func validateFilter(f RoomFilter) error {
	if _, ok := models.ParseRoomStatus(f.Status); !ok {
		return validationErr("unknown status filter " + f.Status)
	}
	return nil
}

func (q *QueryService) Rooms(f RoomFilter, ref models.Date) ([]RoomView, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	snap := q.Store.Snapshot()
	return BuildRoomViews(snap, FilterRooms(snap, f, ref), ref), nil
}

func (q *QueryService) Room(id string, ref models.Date) (RoomDetail, error) {
	snap := q.Store.Snapshot()
	room, ok := snap.Room(id)
	if !ok {
		return RoomDetail{}, &NotFoundError{Kind: "room", ID: id}
	}
	return RoomDetail{
		RoomView:     BuildRoomViews(snap, []models.Room{room}, ref)[0],
		Reservations: ReservationsForRoom(snap, id),
	}, nil
}

// RoomStatus resolves one room. Unknown rooms are reported as not found even
// though the resolver itself would answer Available.
func (q *QueryService) RoomStatus(id string, ref models.Date) (models.RoomStatus, error) {
	snap := q.Store.Snapshot()
	if _, ok := snap.Room(id); !ok {
		return "", &NotFoundError{Kind: "room", ID: id}
	}
	return ResolveStatus(snap, id, ref), nil
}

func (q *QueryService) RoomTypes() []string {
	return RoomTypes(q.Store.Snapshot())
}

// Reservations returns the list in store order.
func (q *QueryService) Reservations() []models.Reservation {
	return q.Store.Snapshot().Reservations
}

// Upcoming sorts by check-in, keeps only the given statuses (all when empty)
// and truncates to limit when limit > 0.
func (q *QueryService) Upcoming(statuses []models.ReservationStatus, limit int) []models.Reservation {
	sorted := UpcomingReservations(q.Store.Snapshot().Reservations)
	return narrow(sorted, statuses, limit)
}

func narrow(list []models.Reservation, statuses []models.ReservationStatus, limit int) []models.Reservation {
	out := []models.Reservation{}
	for _, r := range list {
		if len(statuses) > 0 && !containsStatus(statuses, r.Status) {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func containsStatus(list []models.ReservationStatus, st models.ReservationStatus) bool {
	for _, s := range list {
		if s == st {
			return true
		}
	}
	return false
}

// Dashboard assembles the main screen from a single snapshot.
func (q *QueryService) Dashboard(f RoomFilter, ref models.Date, upcomingLimit int) (Dashboard, error) {
	if err := validateFilter(f); err != nil {
		return Dashboard{}, err
	}
	snap := q.Store.Snapshot()
	rooms := FilterRooms(snap, f, ref)
	return Dashboard{
		Rooms:    BuildRoomViews(snap, rooms, ref),
		Shown:    len(rooms),
		Total:    len(snap.Rooms),
		Types:    RoomTypes(snap),
		Upcoming: narrow(UpcomingReservations(snap.Reservations), nil, upcomingLimit),
	}, nil
}
