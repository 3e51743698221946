package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"hotel-frontdesk/models"
)

// ReservationExportHeader is shared by the CSV and XLSX exports.
var ReservationExportHeader = []string{"id", "guest", "roomId", "checkIn", "checkOut", "status"}

type ExportService struct {
	Store *EntityStore
}

func NewExportService(store *EntityStore) *ExportService {
	return &ExportService{Store: store}
}

func (e *ExportService) CSV() []byte {
	return ReservationsCSV(e.Store.Snapshot().Reservations)
}

func (e *ExportService) XLSX() ([]byte, error) {
	return ReservationsXLSX(e.Store.Snapshot().Reservations)
}

// ReservationsCSV renders one line per reservation in store order. The guest
// is wrapped in quotes and nothing is escaped, which keeps the file byte
// compatible with exports staff already have.
func ReservationsCSV(list []models.Reservation) []byte {
	lines := make([]string, 0, len(list)+1)
	lines = append(lines, strings.Join(ReservationExportHeader, ","))
	for _, r := range list {
		lines = append(lines, fmt.Sprintf(`%s,"%s",%s,%s,%s,%s`,
			r.ID, r.Guest, r.RoomID, r.CheckIn, r.CheckOut, r.Status))
	}
	return []byte(strings.Join(lines, "\n"))
}

const reservationSheet = "Reservations"

// ReservationsXLSX renders the same columns as a workbook with a bold header.
func ReservationsXLSX(list []models.Reservation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reservationSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, h := range ReservationExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(reservationSheet, cell, h); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(ReservationExportHeader), 1)
	if err := f.SetCellStyle(reservationSheet, "A1", last, headerStyle); err != nil {
		return nil, err
	}

	for i, r := range list {
		row := []any{r.ID, r.Guest, r.RoomID, r.CheckIn.String(), r.CheckOut.String(), string(r.Status)}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(reservationSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
