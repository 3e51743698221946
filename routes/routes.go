package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
)

// Controllers groups the handlers the router mounts.
type Controllers struct {
	Rooms        *controllers.RoomController
	Reservations *controllers.ReservationController
	Export       *controllers.ExportController
	Admin        *controllers.AdminController
}

func normalizeOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, part := range raw {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func corsConfig(raw []string) cors.Config {
	origins := normalizeOrigins(raw)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter mounts the front-desk API.
func SetupRouter(ctrl Controllers, corsOrigins []string, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log), middleware.Metrics())
	r.Use(cors.New(corsConfig(corsOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", ctrl.Rooms.GetRooms)
			// static segment before /:id
			rooms.GET("/types", ctrl.Rooms.GetRoomTypes)
			rooms.GET("/:id", ctrl.Rooms.GetRoom)
			rooms.GET("/:id/status", ctrl.Rooms.GetRoomStatus)
			rooms.POST("/:id/housekeeping/toggle", ctrl.Rooms.ToggleHousekeeping)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", ctrl.Reservations.GetReservations)
			reservations.GET("/upcoming", ctrl.Reservations.GetUpcoming)
			reservations.GET("/draft", ctrl.Reservations.GetDraft)
			reservations.POST("", ctrl.Reservations.CreateReservation)
			reservations.POST("/demo", ctrl.Reservations.CreateDemo)
			reservations.PUT("/:id", ctrl.Reservations.UpdateReservation)
			reservations.POST("/:id/checkin", ctrl.Reservations.CheckIn)
			reservations.POST("/:id/checkout", ctrl.Reservations.CheckOut)
			reservations.POST("/:id/cancel", ctrl.Reservations.Cancel)
		}

		api.GET("/dashboard", ctrl.Rooms.GetDashboard)

		export := api.Group("/export")
		{
			export.GET("/reservations.csv", ctrl.Export.ReservationsCSV)
			export.GET("/reservations.xlsx", ctrl.Export.ReservationsXLSX)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/reset", ctrl.Admin.Reset)
		}
	}

	return r
}
