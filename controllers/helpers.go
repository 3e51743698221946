package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

// Clock supplies "today" for requests that do not pin a date.
type Clock func() time.Time

func (clk Clock) today() models.Date {
	if clk == nil {
		return models.DateOf(time.Now())
	}
	return models.DateOf(clk())
}

// respondError maps service errors onto HTTP statuses and error codes.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "error.validation", err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notFound", err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "error.invalidTransition", err.Error())
	case errors.Is(err, services.ErrStorage):
		log.Error("storage failure", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "error.storageUnavailable", "storage is unavailable, try again")
	default:
		log.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal error")
	}
}

// referenceDate reads ?date=YYYY-MM-DD, defaulting to today. On a bad value
// it has already written the 400 and returns false.
func referenceDate(c *gin.Context, clk Clock) (models.Date, bool) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return clk.today(), true
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "date must be YYYY-MM-DD")
		return models.Date{}, false
	}
	return d, true
}

// queryLimit reads a non-negative integer query parameter; 0 means no limit.
func queryLimit(c *gin.Context, name string, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidLimit", name+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}

// queryStatuses accepts ?status=reserved,checked-in as well as repeated
// status parameters.
func queryStatuses(c *gin.Context) ([]models.ReservationStatus, bool) {
	var out []models.ReservationStatus
	for _, raw := range c.QueryArray("status") {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			st, err := models.ParseReservationStatus(part)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "error.invalidStatus", err.Error())
				return nil, false
			}
			out = append(out, st)
		}
	}
	return out, true
}
