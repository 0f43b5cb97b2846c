// File: modernschedule/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"modernschedule/config"
	availabilityRepo "modernschedule/database/repository/availability"
	"modernschedule/handlers"
	"modernschedule/middleware"
	"modernschedule/models"
	"modernschedule/routes"
	"modernschedule/services/auth"
	availabilitySvc "modernschedule/services/availability"
	"modernschedule/services/booking"
	"modernschedule/services/notification"
	"modernschedule/services/selection"
	"modernschedule/services/settings"
	"modernschedule/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.InitSelectionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	notifier := notification.NewLogNotifier(logger)

	// repositories.
	availRepo := availabilityRepo.NewMemoryAvailabilityRepo(models.TimeRange{
		StartTime: config.AppConfig.DefaultRangeStart,
		EndTime:   config.AppConfig.DefaultRangeEnd,
	})

	// services.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	authenticator, err := auth.NewStaticAuthenticator(
		config.AppConfig.AdminUsername,
		config.AppConfig.AdminPassword,
		utils.GetSessionCacheClient(),
		sessionTTL,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize authenticator: %v", err)
	}

	availabilityService := &availabilitySvc.DefaultAvailabilityService{
		Repo:     availRepo,
		Notifier: notifier,
	}
	bookingService := &booking.DefaultBookingService{
		Logger:   logger,
		Notifier: notifier,
	}
	slotSettings := settings.NewSlotSettings(config.AppConfig.DefaultTimeSlots)
	selectionService := selection.NewRedisSelectionService(utils.GetSelectionCacheClient(), sessionTTL)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:         handlers.NewAuthHandler(authenticator, notifier),
		Schedule:     handlers.NewScheduleHandler(),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Booking:      handlers.NewBookingHandler(bookingService, slotSettings),
		Settings:     handlers.NewSettingsHandler(slotSettings),
		Selection:    handlers.NewSelectionHandler(selectionService),
		Sessions:     utils.GetSessionCacheClient(),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
