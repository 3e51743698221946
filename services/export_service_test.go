package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hotel-frontdesk/models"
)

func TestReservationsCSV(t *testing.T) {
	got := string(ReservationsCSV(DefaultSnapshot().Reservations))
	want := "id,guest,roomId,checkIn,checkOut,status\n" +
		`r1,"María López",101,2025-10-14,2025-10-16,reserved` + "\n" +
		`r2,"John Doe",102,2025-10-13,2025-10-15,checked-in`
	assert.Equal(t, want, got)
}

func TestReservationsCSV_DoesNotEscapeGuest(t *testing.T) {
	got := string(ReservationsCSV([]models.Reservation{{
		ID: "r9", Guest: `Doe, "JJ"`, RoomID: "101",
		CheckIn: date("2025-10-14"), CheckOut: date("2025-10-15"), Status: models.StatusReserved,
	}}))
	assert.Contains(t, got, `r9,"Doe, "JJ"",101`)
}

func TestReservationsCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	assert.Equal(t, "id,guest,roomId,checkIn,checkOut,status", string(ReservationsCSV(nil)))
}

func TestReservationsXLSX(t *testing.T) {
	data, err := ReservationsXLSX(DefaultSnapshot().Reservations)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reservations")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, ReservationExportHeader, rows[0])
	assert.Equal(t, []string{"r1", "María López", "101", "2025-10-14", "2025-10-16", "reserved"}, rows[1])
}

func TestExportService_UsesStoreOrder(t *testing.T) {
	store, _ := newTestStore(t, nil)
	e := NewExportService(store)
	assert.Equal(t, ReservationsCSV(DefaultSnapshot().Reservations), e.CSV())
}
