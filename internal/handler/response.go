package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool/internal/service"
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

// mapErrorToHTTPStatus maps service errors to HTTP status codes. Booking
// rejections are expected outcomes, never 500s.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrRideNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidEmployeeID),
		errors.Is(err, service.ErrInvalidRideID),
		errors.Is(err, service.ErrInvalidVehicleType),
		errors.Is(err, service.ErrInvalidVehicleNo),
		errors.Is(err, service.ErrInvalidSeatCount),
		errors.Is(err, service.ErrInvalidRideTime),
		errors.Is(err, service.ErrInvalidRoute):
		return http.StatusBadRequest

	// Business rule conflicts
	case errors.Is(err, service.ErrRideExists),
		errors.Is(err, service.ErrAlreadyBooked),
		errors.Is(err, service.ErrNoVacantSeats):
		return http.StatusConflict

	case errors.Is(err, service.ErrOwnRide):
		return http.StatusForbidden

	default:
		return http.StatusInternalServerError
	}
}
