package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"tpass/internal/handler"
	"tpass/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	PeriodHandler   *handler.PeriodHandler
	TripHandler     *handler.TripHandler
	StationHandler  *handler.StationHandler
	SettingsHandler *handler.SettingsHandler
	FareHandler     *handler.FareHandler
	RedisClient     *redis.Client
	NewRelicApp     *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.Idempotency(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Period routes.
		periods := v1.Group("/periods")
		{
			periods.POST("", deps.PeriodHandler.CreatePeriod)
			periods.GET("", deps.PeriodHandler.ListPeriods)
			periods.GET("/active", deps.PeriodHandler.GetActivePeriod)
			periods.POST("/check-expired", deps.PeriodHandler.CheckExpired)
			periods.GET("/:id", deps.PeriodHandler.GetPeriod)
			periods.GET("/:id/stats", deps.PeriodHandler.GetPeriodStats)
			periods.GET("/:id/trips", deps.TripHandler.ListPeriodTrips)
			periods.GET("/:id/refund-estimate", deps.FareHandler.RefundEstimate)
		}

		// Trip routes.
		trips := v1.Group("/trips")
		{
			trips.POST("", deps.TripHandler.RecordTrip)
			trips.GET("/:id", deps.TripHandler.GetTrip)
			trips.PUT("/:id", deps.TripHandler.UpdateTrip)
			trips.DELETE("/:id", deps.TripHandler.DeleteTrip)
		}

		// Reference data routes.
		v1.GET("/transport-types", deps.StationHandler.ListTransportTypes)
		v1.GET("/networks", deps.StationHandler.ListNetworks)
		v1.GET("/networks/:network/stations", deps.StationHandler.ListStations)

		// Fare quote routes.
		v1.POST("/fares/quote", deps.FareHandler.Quote)

		// Stats routes.
		v1.GET("/stats/global", deps.PeriodHandler.GetGlobalStats)

		// Settings routes.
		v1.GET("/settings", deps.SettingsHandler.GetSettings)
		v1.PUT("/settings", deps.SettingsHandler.UpdateSettings)
	}

	return router
}
