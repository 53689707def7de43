package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tpass/internal/domain"
	"tpass/internal/fare"
	"tpass/internal/service"
)

// FareHandler answers fare quotes without recording a trip.
type FareHandler struct {
	settingsService *service.SettingsService
	periodService   *service.PeriodService
}

// NewFareHandler creates a new FareHandler.
func NewFareHandler(settingsService *service.SettingsService, periodService *service.PeriodService) *FareHandler {
	return &FareHandler{
		settingsService: settingsService,
		periodService:   periodService,
	}
}

// QuoteRequest is the HTTP request body for a fare quote.
type QuoteRequest struct {
	TransportType    string `json:"transport_type"`
	DepartureStation string `json:"departure_station,omitempty"`
	ArrivalStation   string `json:"arrival_station,omitempty"`
	Segments         int    `json:"segments,omitempty"`
	Duration         int    `json:"duration,omitempty"` // minutes
	City             string `json:"city,omitempty"`
}

// QuoteResponse is the HTTP response for a fare quote. Resolved is false when
// the fare could not be computed from the inputs and a manual amount is
// required instead.
type QuoteResponse struct {
	Amount   int64 `json:"amount"`
	Resolved bool  `json:"resolved"`
}

// Quote handles POST /v1/fares/quote
func (h *FareHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	transportType := domain.TransportType(req.TransportType)
	if !domain.ValidTransportType(transportType) {
		respondError(c, service.ErrInvalidTransportType)
		return
	}

	var amount int64
	resolved := true
	switch transportType {
	case domain.TransportTaipeiMetro, domain.TransportNewTaipeiMetro,
		domain.TransportTaoyuanMetro, domain.TransportDanhaiLRT,
		domain.TransportAnkengLRT, domain.TransportTRA:
		amount = fare.Compute(fare.StationPairParams{
			Type: transportType,
			From: req.DepartureStation,
			To:   req.ArrivalStation,
		})
		resolved = amount != 0

	case domain.TransportBus:
		if !fare.ValidSegments(req.Segments) {
			respondError(c, service.ErrInvalidSegments)
			return
		}
		amount = fare.Compute(fare.BusParams{
			Segments:       req.Segments,
			FarePerSegment: h.settingsService.DefaultBusFare(c.Request.Context()),
		})

	case domain.TransportYouBike:
		city := domain.YouBikeCity(req.City)
		if !domain.ValidYouBikeCity(city) {
			respondError(c, service.ErrInvalidCity)
			return
		}
		if !fare.ValidDuration(req.Duration) {
			respondError(c, service.ErrInvalidDuration)
			return
		}
		amount = fare.Compute(fare.YouBikeParams{Minutes: req.Duration, City: city})

	default:
		// Highway bus and ferry fares are always entered manually.
		resolved = false
	}

	respondJSON(c, http.StatusOK, QuoteResponse{Amount: amount, Resolved: resolved})
}

// RefundEstimateResponse is the HTTP response for a refund estimate.
type RefundEstimateResponse struct {
	PeriodID     string `json:"period_id"`
	DaysElapsed  int    `json:"days_elapsed"`
	RefundAmount int64  `json:"refund_amount"`
	Refundable   bool   `json:"refundable"`
}

// RefundEstimate handles GET /v1/periods/:id/refund-estimate
func (h *FareHandler) RefundEstimate(c *gin.Context) {
	period, err := h.periodService.GetPeriod(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.periodService.PeriodStats(c.Request.Context(), period.ID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	refund := fare.RefundEstimate(period.TicketPrice, stats.DaysElapsed)
	respondJSON(c, http.StatusOK, RefundEstimateResponse{
		PeriodID:     period.ID,
		DaysElapsed:  stats.DaysElapsed,
		RefundAmount: refund,
		Refundable:   refund > 0,
	})
}
