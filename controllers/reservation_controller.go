package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type ReservationController struct {
	Query        *services.QueryService
	Reservations *services.ReservationService
	Clock        Clock
	Log          *zap.Logger
}

func NewReservationController(q *services.QueryService, rs *services.ReservationService, log *zap.Logger) *ReservationController {
	return &ReservationController{Query: q, Reservations: rs, Log: log}
}

// GET /api/reservations
func (rc *ReservationController) GetReservations(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Query.Reservations())
}

// GET /api/reservations/upcoming?limit=&status=
func (rc *ReservationController) GetUpcoming(c *gin.Context) {
	limit, ok := queryLimit(c, "limit", 0)
	if !ok {
		return
	}
	statuses, ok := queryStatuses(c)
	if !ok {
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rc.Query.Upcoming(statuses, limit))
}

// GET /api/reservations/draft?roomId=&date=
func (rc *ReservationController) GetDraft(c *gin.Context) {
	today, ok := referenceDate(c, rc.Clock)
	if !ok {
		return
	}
	form, err := rc.Reservations.Draft(strings.TrimSpace(c.Query("roomId")), today)
	if err != nil {
		respondError(c, rc.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, form)
}

// POST /api/reservations
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var form models.ReservationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	// creation always mints a fresh id
	form.ID = ""
	rc.save(c, form, http.StatusCreated)
}

// PUT /api/reservations/:id
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var form models.ReservationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	form.ID = c.Param("id")
	rc.save(c, form, http.StatusOK)
}

func (rc *ReservationController) save(c *gin.Context, form models.ReservationForm, status int) {
	res, err := rc.Reservations.CreateOrUpdate(c.Request.Context(), form)
	if err != nil {
		respondError(c, rc.Log, err)
		return
	}
	utils.JSONSuccess(c, status, res)
}

// POST /api/reservations/:id/checkin
func (rc *ReservationController) CheckIn(c *gin.Context) {
	rc.transition(c, rc.Reservations.CheckIn)
}

// POST /api/reservations/:id/checkout
func (rc *ReservationController) CheckOut(c *gin.Context) {
	rc.transition(c, rc.Reservations.CheckOut)
}

// POST /api/reservations/:id/cancel
func (rc *ReservationController) Cancel(c *gin.Context) {
	rc.transition(c, rc.Reservations.Cancel)
}

func (rc *ReservationController) transition(c *gin.Context, apply func(ctx context.Context, id string) (models.Reservation, error)) {
	res, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, rc.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// POST /api/reservations/demo
func (rc *ReservationController) CreateDemo(c *gin.Context) {
	res, err := rc.Reservations.CreateDemo(c.Request.Context(), rc.Clock.today())
	if err != nil {
		respondError(c, rc.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}
