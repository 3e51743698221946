package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-frontdesk/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	Export *services.ExportService
	Log    *zap.Logger
}

func NewExportController(e *services.ExportService, log *zap.Logger) *ExportController {
	return &ExportController{Export: e, Log: log}
}

// GET /api/export/reservations.csv
func (ec *ExportController) ReservationsCSV(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="reservations.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", ec.Export.CSV())
}

// GET /api/export/reservations.xlsx
func (ec *ExportController) ReservationsXLSX(c *gin.Context) {
	body, err := ec.Export.XLSX()
	if err != nil {
		respondError(c, ec.Log, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="reservations.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, body)
}
