package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tpass/internal/repository"
	"tpass/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrNoActivePeriod):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidPeriodID),
		errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrInvalidStartDate),
		errors.Is(err, service.ErrInvalidTicketPrice),
		errors.Is(err, service.ErrInvalidTransportType),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidDuration),
		errors.Is(err, service.ErrInvalidSegments),
		errors.Is(err, service.ErrInvalidCity),
		errors.Is(err, service.ErrInvalidBusFare):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrActivePeriodExists),
		errors.Is(err, service.ErrPeriodCreationLocked):
		return http.StatusConflict

	// Unresolvable fare needs a manual amount
	case errors.Is(err, service.ErrUnresolvedFare):
		return http.StatusUnprocessableEntity

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
