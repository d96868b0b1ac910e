// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	practitionerRepoPkg "medibook/database/repository/practitioner"
	scheduleRepoPkg "medibook/database/repository/schedule"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/availability"
	practitionerSvc "medibook/services/practitioner"
	scheduleSvc "medibook/services/schedule"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	rosterRepo := practitionerRepoPkg.NewMongoPractitionerRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()

	// services.
	practitionerService := &practitionerSvc.DefaultPractitionerService{
		Repo: rosterRepo,
	}

	availabilityService := &availability.DefaultAvailabilityService{
		Roster:   practitionerService,
		Schedule: scheduleRepo,
		Cache:    utils.GetCacheClient(),
		Limits: availability.WindowLimits{
			DefaultSpanDays: config.AppConfig.DefaultSearchSpanDays,
			MaxSpanDays:     config.AppConfig.MaxSearchSpanDays,
		},
		CacheTTL: time.Duration(config.AppConfig.AvailabilityCacheTTLSecond) * time.Second,
	}

	scheduleService := &scheduleSvc.DefaultScheduleService{
		Repo:   scheduleRepo,
		Roster: rosterRepo,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, logger)
	practitionerHandler := handlers.NewPractitionerHandler(practitionerService)
	adminHandler := handlers.NewAdminHandler(practitionerService, scheduleService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SearchAvailability:                availabilityHandler.SearchAvailability,
		GetPractitionerByIDHandler:        practitionerHandler.GetPractitionerByIDHandler,
		GetPractitionersByVerticalHandler: practitionerHandler.GetPractitionersByVerticalHandler,
		CreatePractitioner:                adminHandler.CreatePractitionerHandler,
		UpdatePractitioner:                adminHandler.UpdatePractitionerHandler,
		DeletePractitioner:                adminHandler.DeletePractitionerHandler,
		CreateScheduleBlock:               adminHandler.CreateScheduleBlockHandler,
		CreateBookedInterval:              adminHandler.CreateBookedIntervalHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic health snapshot for /health.
	utils.StartHealthMonitor(time.Duration(config.AppConfig.HealthIntervalSeconds) * time.Second)

	// Background cache warmer.
	cron.InitWarmWorker(availabilityService, practitionerService)
	if verticals := splitVerticals(config.AppConfig.WarmVerticals); len(verticals) > 0 {
		warmClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisWarmerDB,
		})
		interval := time.Duration(config.AppConfig.WarmIntervalMinutes) * time.Minute
		cron.StartWarmScheduler(warmClient, verticals, interval)
	}

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

func splitVerticals(raw string) []string {
	var verticals []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			verticals = append(verticals, v)
		}
	}
	return verticals
}
