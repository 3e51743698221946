package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

const defaultUpcomingLimit = 10

type RoomController struct {
	Query        *services.QueryService
	Reservations *services.ReservationService
	Clock        Clock
	Log          *zap.Logger
}

func NewRoomController(q *services.QueryService, rs *services.ReservationService, log *zap.Logger) *RoomController {
	return &RoomController{Query: q, Reservations: rs, Log: log}
}

// GET /api/rooms?type=&status=&q=&date=
func (rc *RoomController) GetRooms(c *gin.Context) {
	var f services.RoomFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidQuery", err.Error())
		return
	}
	ref, ok := referenceDate(c, rc.Clock)
	if !ok {
		return
	}
	rooms, err := rc.Query.Rooms(f, ref)
	if err != nil {
		respondError(c, rc.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GET /api/rooms/types
func (rc *RoomController) GetRoomTypes(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Query.RoomTypes())
}

// GET /api/rooms/:id
func (rc *RoomController) GetRoom(c *gin.Context) {
	ref, ok := referenceDate(c, rc.Clock)
	if !ok {
		return
	}
	detail, err := rc.Query.Room(c.Param("id"), ref)
	if err != nil {
		respondError(c, rc.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, detail)
}

// GET /api/rooms/:id/status?date=
func (rc *RoomController) GetRoomStatus(c *gin.Context) {
	ref, ok := referenceDate(c, rc.Clock)
	if !ok {
		return
	}
	id := c.Param("id")
	status, err := rc.Query.RoomStatus(id, ref)
	if err != nil {
		respondError(c, rc.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"roomId": id,
		"date":   ref,
		"status": status,
	})
}

// POST /api/rooms/:id/housekeeping/toggle
func (rc *RoomController) ToggleHousekeeping(c *gin.Context) {
	id := c.Param("id")
	if _, err := rc.Query.RoomStatus(id, rc.Clock.today()); err != nil {
		respondError(c, rc.Log, err)
		return
	}
	state, err := rc.Reservations.ToggleHousekeeping(c.Request.Context(), id)
	if err != nil {
		respondError(c, rc.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"roomId":       id,
		"housekeeping": state,
	})
}

// GET /api/dashboard?type=&status=&q=&date=&limit=
func (rc *RoomController) GetDashboard(c *gin.Context) {
	var f services.RoomFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidQuery", err.Error())
		return
	}
	ref, ok := referenceDate(c, rc.Clock)
	if !ok {
		return
	}
	limit, ok := queryLimit(c, "limit", defaultUpcomingLimit)
	if !ok {
		return
	}
	dash, err := rc.Query.Dashboard(f, ref, limit)
	if err != nil {
		respondError(c, rc.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dash)
}
