package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-frontdesk/config"
	"hotel-frontdesk/controllers"
	"hotel-frontdesk/routes"
	"hotel-frontdesk/services"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf(".env could not be loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat, "hotel-frontdesk")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	repo, err := config.OpenSnapshotRepository(startCtx, cfg, logger)
	if err != nil {
		cancelStart()
		logger.Fatal("storage init failed", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	store := services.NewEntityStore(startCtx, repo, logger)
	cancelStart()
	logger.Info("storage ready", zap.String("driver", cfg.StorageDriver))

	events, eventsCloser := config.OpenEventPublisher(cfg, logger)

	// services
	queries := services.NewQueryService(store)
	reservations := services.NewReservationService(store, events, logger)
	exports := services.NewExportService(store)

	router := routes.SetupRouter(routes.Controllers{
		Rooms:        controllers.NewRoomController(queries, reservations, logger),
		Reservations: controllers.NewReservationController(queries, reservations, logger),
		Export:       controllers.NewExportController(exports, logger),
		Admin:        controllers.NewAdminController(reservations, logger),
	}, cfg.CorsOrigins, logger)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	if err := eventsCloser.Close(); err != nil {
		logger.Warn("event publisher close failed", zap.Error(err))
	}
	if err := repo.Close(); err != nil {
		logger.Warn("storage close failed", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
