package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool/internal/domain"
	"carpool/internal/service"
)

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rideService *service.RideService
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rideService *service.RideService) *RideHandler {
	return &RideHandler{rideService: rideService}
}

// CreateRideRequest is the HTTP request body for posting a ride offer.
type CreateRideRequest struct {
	EmployeeID  string `json:"employeeId"`
	VehicleType string `json:"vehicleType"` // Bike or Car
	VehicleNo   string `json:"vehicleNo"`
	VacantSeats int    `json:"vacantSeats"`
	Time        string `json:"time"` // HH:MM, 24h
	PickupPoint string `json:"pickupPoint"`
	Destination string `json:"destination"`
}

// BookRideRequest is the HTTP request body for booking a seat.
type BookRideRequest struct {
	EmployeeID string `json:"employeeId"`
}

// RideResponse is the HTTP representation of a ride.
type RideResponse struct {
	RideID          string   `json:"rideId"`
	EmployeeID      string   `json:"employeeId"`
	VehicleType     string   `json:"vehicleType"`
	VehicleNo       string   `json:"vehicleNo"`
	VacantSeats     int      `json:"vacantSeats"`
	Time            string   `json:"time"`
	PickupPoint     string   `json:"pickupPoint"`
	Destination     string   `json:"destination"`
	BookedEmployees []string `json:"bookedEmployees"`
}

func toRideResponse(r *domain.Ride) RideResponse {
	booked := r.BookedEmployees
	if booked == nil {
		booked = make([]string, 0)
	}
	return RideResponse{
		RideID:          r.RideID,
		EmployeeID:      r.EmployeeID,
		VehicleType:     string(r.VehicleType),
		VehicleNo:       r.VehicleNo,
		VacantSeats:     r.VacantSeats,
		Time:            r.Time,
		PickupPoint:     r.PickupPoint,
		Destination:     r.Destination,
		BookedEmployees: booked,
	}
}

// CreateRide handles POST /v1/rides
func (h *RideHandler) CreateRide(c *gin.Context) {
	var req CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rideService.AddRide(c.Request.Context(), service.CreateRideRequest{
		EmployeeID:  req.EmployeeID,
		VehicleType: req.VehicleType,
		VehicleNo:   req.VehicleNo,
		VacantSeats: req.VacantSeats,
		Time:        req.Time,
		PickupPoint: req.PickupPoint,
		Destination: req.Destination,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toRideResponse(ride))
}

// GetAll handles GET /v1/rides
//
// Optional query params narrow the listing as a display convenience; they
// have no bearing on booking eligibility:
//
//	employee_id  - exclude rides owned or already booked by this employee
//	vehicle_type - exact vehicle type match
//	time         - HH:MM; keep rides within 60 minutes either way
func (h *RideHandler) GetAll(c *gin.Context) {
	rides, err := h.rideService.GetRides(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	employeeID := c.Query("employee_id")
	vehicleType := c.Query("vehicle_type")

	filterMinutes := -1
	if t := c.Query("time"); t != "" {
		m, err := domain.ParseRideTime(t)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid time filter"})
			return
		}
		filterMinutes = m
	}

	response := make([]RideResponse, 0, len(rides))
	for i := range rides {
		r := &rides[i]

		if employeeID != "" && (r.EmployeeID == employeeID || r.HasBooking(employeeID)) {
			continue
		}
		if vehicleType != "" && string(r.VehicleType) != vehicleType {
			continue
		}
		if filterMinutes >= 0 {
			rideMinutes, err := domain.ParseRideTime(r.Time)
			if err != nil {
				continue
			}
			diff := rideMinutes - filterMinutes
			if diff < 0 {
				diff = -diff
			}
			if diff > 60 {
				continue
			}
		}

		response = append(response, toRideResponse(r))
	}

	c.JSON(http.StatusOK, response)
}

// BookRide handles POST /v1/rides/:id/book
func (h *RideHandler) BookRide(c *gin.Context) {
	rideID := c.Param("id")

	var req BookRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rideService.BookRide(c.Request.Context(), rideID, req.EmployeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(ride))
}
