package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tpass/internal/domain"
	"tpass/internal/service"
)

// TripHandler handles HTTP requests for trips.
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// RecordTripRequest is the HTTP request body for recording a trip.
type RecordTripRequest struct {
	TransportType    string `json:"transport_type"`
	DepartureStation string `json:"departure_station,omitempty"`
	ArrivalStation   string `json:"arrival_station,omitempty"`
	RouteNumber      string `json:"route_number,omitempty"`
	Segments         int    `json:"segments,omitempty"`
	Duration         int    `json:"duration,omitempty"` // minutes
	City             string `json:"city,omitempty"`
	FerryRoute       string `json:"ferry_route,omitempty"`
	Amount           int64  `json:"amount,omitempty"` // manual override
	Timestamp        string `json:"timestamp,omitempty"`
	Note             string `json:"note,omitempty"`
}

// UpdateTripRequest is the HTTP request body for editing a trip.
type UpdateTripRequest struct {
	DepartureStation string `json:"departure_station,omitempty"`
	ArrivalStation   string `json:"arrival_station,omitempty"`
	RouteNumber      string `json:"route_number,omitempty"`
	Segments         int    `json:"segments,omitempty"`
	Duration         int    `json:"duration,omitempty"`
	City             string `json:"city,omitempty"`
	FerryRoute       string `json:"ferry_route,omitempty"`
	Amount           int64  `json:"amount,omitempty"`
	Timestamp        string `json:"timestamp,omitempty"`
	Note             string `json:"note,omitempty"`
}

// TripResponse is the HTTP representation of a trip.
type TripResponse struct {
	ID               string `json:"id"`
	PeriodID         string `json:"period_id"`
	TransportType    string `json:"transport_type"`
	DepartureStation string `json:"departure_station,omitempty"`
	ArrivalStation   string `json:"arrival_station,omitempty"`
	RouteNumber      string `json:"route_number,omitempty"`
	Segments         int    `json:"segments,omitempty"`
	Duration         int    `json:"duration,omitempty"`
	City             string `json:"city,omitempty"`
	FerryRoute       string `json:"ferry_route,omitempty"`
	Amount           int64  `json:"amount"`
	Timestamp        string `json:"timestamp"`
	Note             string `json:"note,omitempty"`
}

func toTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		ID:               t.ID,
		PeriodID:         t.PeriodID,
		TransportType:    string(t.TransportType),
		DepartureStation: t.DepartureStation,
		ArrivalStation:   t.ArrivalStation,
		RouteNumber:      t.RouteNumber,
		Segments:         t.Segments,
		Duration:         t.Duration,
		City:             string(t.City),
		FerryRoute:       t.FerryRoute,
		Amount:           t.Amount,
		Timestamp:        t.Timestamp.Format(time.RFC3339),
		Note:             t.Note,
	}
}

func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// RecordTrip handles POST /v1/trips
func (h *TripHandler) RecordTrip(c *gin.Context) {
	var req RecordTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ts, ok := parseTimestamp(req.Timestamp)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "timestamp must be RFC 3339"})
		return
	}

	trip, err := h.tripService.RecordTrip(c.Request.Context(), service.RecordTripRequest{
		TransportType:    domain.TransportType(req.TransportType),
		DepartureStation: req.DepartureStation,
		ArrivalStation:   req.ArrivalStation,
		RouteNumber:      req.RouteNumber,
		Segments:         req.Segments,
		Duration:         req.Duration,
		City:             domain.YouBikeCity(req.City),
		FerryRoute:       req.FerryRoute,
		Amount:           req.Amount,
		Timestamp:        ts,
		Note:             req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toTripResponse(trip))
}

// UpdateTrip handles PUT /v1/trips/:id
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ts, ok := parseTimestamp(req.Timestamp)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "timestamp must be RFC 3339"})
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), c.Param("id"), service.UpdateTripRequest{
		DepartureStation: req.DepartureStation,
		ArrivalStation:   req.ArrivalStation,
		RouteNumber:      req.RouteNumber,
		Segments:         req.Segments,
		Duration:         req.Duration,
		City:             domain.YouBikeCity(req.City),
		FerryRoute:       req.FerryRoute,
		Amount:           req.Amount,
		Timestamp:        ts,
		Note:             req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(trip))
}

// GetTrip handles GET /v1/trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(trip))
}

// ListPeriodTrips handles GET /v1/periods/:id/trips
func (h *TripHandler) ListPeriodTrips(c *gin.Context) {
	trips, err := h.tripService.ListByPeriod(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		responses = append(responses, toTripResponse(t))
	}

	respondJSON(c, http.StatusOK, responses)
}

// DeleteTrip handles DELETE /v1/trips/:id
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	if err := h.tripService.DeleteTrip(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
