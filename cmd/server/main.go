package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"tpass/internal/app"
	"tpass/internal/config"
	"tpass/internal/handler"
	internalRedis "tpass/internal/redis"
	"tpass/internal/repository/postgres"
	"tpass/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server, periodService := wireServer(db, redisClient, nrApp, cfg)

	// Expire a finished period left over from before the last shutdown.
	if expired, err := periodService.CheckAndExpire(ctx, time.Now()); err != nil {
		log.Printf("period expiry check failed: %v", err)
	} else if expired != nil {
		log.Printf("completed period %s (ended %s)", expired.ID, expired.EndDate.Format("2006-01-02"))
	}

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server along with
// the period service for the startup expiry check.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) (*http.Server, *service.PeriodService) {
	// Initialize Redis stores.
	lockStore := internalRedis.NewLockStore(redisClient)
	cacheStore := internalRedis.NewCacheStore(redisClient)

	// Initialize repositories.
	periodRepo := postgres.NewPeriodRepository(db)
	tripRepo := postgres.NewTripRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)

	// Initialize services.
	settingsService := service.NewSettingsService(settingsRepo, cacheStore, cfg.Fare.DefaultBusFare)
	periodService := service.NewPeriodService(periodRepo, tripRepo, lockStore, cacheStore, cfg.Fare.TicketPrice)
	tripService := service.NewTripService(tripRepo, periodRepo, settingsService)

	// Initialize handlers.
	periodHandler := handler.NewPeriodHandler(periodService)
	tripHandler := handler.NewTripHandler(tripService)
	stationHandler := handler.NewStationHandler()
	settingsHandler := handler.NewSettingsHandler(settingsService)
	fareHandler := handler.NewFareHandler(settingsService, periodService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		PeriodHandler:   periodHandler,
		TripHandler:     tripHandler,
		StationHandler:  stationHandler,
		SettingsHandler: settingsHandler,
		FareHandler:     fareHandler,
		RedisClient:     redisClient,
		NewRelicApp:     nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, periodService
}
