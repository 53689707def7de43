package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tpass/internal/domain"
	"tpass/internal/service"
	"tpass/internal/stats"
)

// PeriodHandler handles HTTP requests for TPASS periods.
type PeriodHandler struct {
	periodService *service.PeriodService
}

// NewPeriodHandler creates a new PeriodHandler.
func NewPeriodHandler(periodService *service.PeriodService) *PeriodHandler {
	return &PeriodHandler{periodService: periodService}
}

const dateLayout = "2006-01-02"

// CreatePeriodRequest is the HTTP request body for starting a period.
type CreatePeriodRequest struct {
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	TicketPrice int64  `json:"ticket_price,omitempty"`
}

// PeriodResponse is the HTTP representation of a period.
type PeriodResponse struct {
	ID          string `json:"id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TicketPrice int64  `json:"ticket_price"`
	Status      string `json:"status"`
}

// PeriodStatsResponse is the HTTP representation of a period stats snapshot.
type PeriodStatsResponse struct {
	TotalAmount        int64                     `json:"total_amount"`
	TripCount          int                       `json:"trip_count"`
	SavedAmount        int64                     `json:"saved_amount"`
	DaysElapsed        int                       `json:"days_elapsed"`
	DaysRemaining      int                       `json:"days_remaining"`
	DailyAverage       float64                   `json:"daily_average"`
	AmountToBreakEven  int64                     `json:"amount_to_break_even"`
	TransportBreakdown []TransportBreakdownEntry `json:"transport_breakdown"`
}

// TransportBreakdownEntry is one per-mode row of a stats breakdown, in
// display order.
type TransportBreakdownEntry struct {
	TransportType string `json:"transport_type"`
	Label         string `json:"label"`
	Count         int    `json:"count"`
	Amount        int64  `json:"amount"`
}

func toPeriodResponse(p *domain.Period) PeriodResponse {
	return PeriodResponse{
		ID:          p.ID,
		StartDate:   p.StartDate.Format(dateLayout),
		EndDate:     p.EndDate.Format(dateLayout),
		TicketPrice: p.TicketPrice,
		Status:      string(p.Status),
	}
}

// CreatePeriod handles POST /v1/periods
func (h *PeriodHandler) CreatePeriod(c *gin.Context) {
	var req CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	start, err := time.ParseInLocation(dateLayout, req.StartDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "start_date must be YYYY-MM-DD"})
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), service.CreatePeriodRequest{
		StartDate:   start,
		TicketPrice: req.TicketPrice,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toPeriodResponse(period))
}

// GetActivePeriod handles GET /v1/periods/active
func (h *PeriodHandler) GetActivePeriod(c *gin.Context) {
	period, err := h.periodService.GetActivePeriod(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toPeriodResponse(period))
}

// GetPeriod handles GET /v1/periods/:id
func (h *PeriodHandler) GetPeriod(c *gin.Context) {
	period, err := h.periodService.GetPeriod(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toPeriodResponse(period))
}

// ListPeriods handles GET /v1/periods
func (h *PeriodHandler) ListPeriods(c *gin.Context) {
	periods, err := h.periodService.ListPeriods(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, toPeriodResponse(p))
	}

	respondJSON(c, http.StatusOK, responses)
}

// GetPeriodStats handles GET /v1/periods/:id/stats
func (h *PeriodHandler) GetPeriodStats(c *gin.Context) {
	periodID := c.Param("id")

	statsSnapshot, err := h.periodService.PeriodStats(c.Request.Context(), periodID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	period, err := h.periodService.GetPeriod(c.Request.Context(), periodID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toPeriodStatsResponse(statsSnapshot, period.TicketPrice))
}

func toPeriodStatsResponse(s *domain.PeriodStats, ticketPrice int64) PeriodStatsResponse {
	breakdown := make([]TransportBreakdownEntry, 0, len(s.TransportBreakdown))
	for _, t := range domain.AllTransportTypes() {
		info, _ := domain.TransportInfo(t)
		stat := s.TransportBreakdown[t]
		breakdown = append(breakdown, TransportBreakdownEntry{
			TransportType: string(t),
			Label:         info.Label,
			Count:         stat.Count,
			Amount:        stat.Amount,
		})
	}

	return PeriodStatsResponse{
		TotalAmount:        s.TotalAmount,
		TripCount:          s.TripCount,
		SavedAmount:        s.SavedAmount,
		DaysElapsed:        s.DaysElapsed,
		DaysRemaining:      s.DaysRemaining,
		DailyAverage:       s.DailyAverage,
		AmountToBreakEven:  stats.AmountToBreakEven(s.TotalAmount, ticketPrice),
		TransportBreakdown: breakdown,
	}
}

// CheckExpiredResponse reports the outcome of an expiry sweep.
type CheckExpiredResponse struct {
	Expired bool            `json:"expired"`
	Period  *PeriodResponse `json:"period,omitempty"`
}

// CheckExpired handles POST /v1/periods/check-expired. Transitions the active
// period to completed when its window has passed; a no-op otherwise. The
// frontend triggers this on load, mirroring the startup sweep.
func (h *PeriodHandler) CheckExpired(c *gin.Context) {
	expired, err := h.periodService.CheckAndExpire(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := CheckExpiredResponse{Expired: expired != nil}
	if expired != nil {
		p := toPeriodResponse(expired)
		resp.Period = &p
	}

	respondJSON(c, http.StatusOK, resp)
}

// GlobalStatsResponse is the HTTP representation of all-time statistics.
type GlobalStatsResponse struct {
	TotalPeriods     int   `json:"total_periods"`
	TotalTicketCost  int64 `json:"total_ticket_cost"`
	TotalTripAmount  int64 `json:"total_trip_amount"`
	TotalSavedAmount int64 `json:"total_saved_amount"`
	TotalTripCount   int   `json:"total_trip_count"`
}

// GetGlobalStats handles GET /v1/stats/global
func (h *PeriodHandler) GetGlobalStats(c *gin.Context) {
	gs, err := h.periodService.GlobalStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, GlobalStatsResponse{
		TotalPeriods:     gs.TotalPeriods,
		TotalTicketCost:  gs.TotalTicketCost,
		TotalTripAmount:  gs.TotalTripAmount,
		TotalSavedAmount: gs.TotalSavedAmount,
		TotalTripCount:   gs.TotalTripCount,
	})
}
