package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type AdminController struct {
	Reservations *services.ReservationService
	Log          *zap.Logger
}

func NewAdminController(rs *services.ReservationService, log *zap.Logger) *AdminController {
	return &AdminController{Reservations: rs, Log: log}
}

// POST /api/admin/reset restores the seed rooms and reservations and clears
// housekeeping.
func (ac *AdminController) Reset(c *gin.Context) {
	snap, err := ac.Reservations.Reset(c.Request.Context())
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}
	ac.Log.Warn("dataset reset", zap.String("client_ip", c.ClientIP()))
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"rooms":        len(snap.Rooms),
		"reservations": len(snap.Reservations),
	})
}
