package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tpass/internal/domain"
	"tpass/internal/service"
)

// SettingsHandler handles HTTP requests for user settings.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SettingsResponse is the HTTP representation of user settings.
type SettingsResponse struct {
	DefaultBusFare int64 `json:"default_bus_fare"`
}

// UpdateSettingsRequest is the HTTP request body for updating settings.
type UpdateSettingsRequest struct {
	DefaultBusFare int64 `json:"default_bus_fare"`
}

func toSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{DefaultBusFare: s.DefaultBusFare}
}

// GetSettings handles GET /v1/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toSettingsResponse(settings))
}

// UpdateSettings handles PUT /v1/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	settings, err := h.settingsService.UpdateBusFare(c.Request.Context(), req.DefaultBusFare)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toSettingsResponse(settings))
}
