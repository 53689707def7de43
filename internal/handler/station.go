package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tpass/internal/domain"
	"tpass/internal/fare"
)

// StationHandler serves the static network and station catalog.
type StationHandler struct{}

// NewStationHandler creates a new StationHandler.
func NewStationHandler() *StationHandler {
	return &StationHandler{}
}

// StationResponse is the HTTP representation of a station.
type StationResponse struct {
	Code          string   `json:"code,omitempty"`
	Name          string   `json:"name"`
	NameEn        string   `json:"name_en,omitempty"`
	Line          string   `json:"line,omitempty"`
	TransferLines []string `json:"transfer_lines,omitempty"`
	IsExpress     bool     `json:"is_express,omitempty"`
}

// TransportTypeResponse is the HTTP representation of a transport mode.
type TransportTypeResponse struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Color string `json:"color"`
}

func toStationResponses(stations []domain.Station) []StationResponse {
	responses := make([]StationResponse, 0, len(stations))
	for _, s := range stations {
		responses = append(responses, StationResponse{
			Code:          s.Code,
			Name:          s.Name,
			NameEn:        s.NameEn,
			Line:          s.Line,
			TransferLines: s.TransferLines,
			IsExpress:     s.IsExpress,
		})
	}
	return responses
}

// ListTransportTypes handles GET /v1/transport-types
func (h *StationHandler) ListTransportTypes(c *gin.Context) {
	types := domain.AllTransportTypes()
	responses := make([]TransportTypeResponse, 0, len(types))
	for _, t := range types {
		info, _ := domain.TransportInfo(t)
		responses = append(responses, TransportTypeResponse{
			Type:  string(t),
			Label: info.Label,
			Color: info.Color,
		})
	}

	respondJSON(c, http.StatusOK, responses)
}

// ListNetworks handles GET /v1/networks
func (h *StationHandler) ListNetworks(c *gin.Context) {
	respondJSON(c, http.StatusOK, fare.Networks())
}

// ListStations handles GET /v1/networks/:network/stations. An optional
// ?q= parameter filters by name, English name, or station code.
func (h *StationHandler) ListStations(c *gin.Context) {
	network := domain.Network(c.Param("network"))

	stations := fare.Stations(network)
	if stations == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown network"})
		return
	}
	if query := c.Query("q"); query != "" {
		stations = fare.SearchStations(network, query)
	}

	respondJSON(c, http.StatusOK, toStationResponses(stations))
}
