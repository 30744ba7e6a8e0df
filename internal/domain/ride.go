package domain

import (
	"fmt"
	"slices"
)

// VehicleType represents the kind of vehicle offered for a ride.
type VehicleType string

const (
	VehicleTypeBike VehicleType = "Bike"
	VehicleTypeCar  VehicleType = "Car"
)

// ParseVehicleType validates a vehicle type string.
func ParseVehicleType(s string) (VehicleType, error) {
	switch VehicleType(s) {
	case VehicleTypeBike, VehicleTypeCar:
		return VehicleType(s), nil
	default:
		return "", fmt.Errorf("unknown vehicle type %q", s)
	}
}

// Ride represents a single ride offer posted by an employee.
// The JSON field names are a compatibility contract with the persisted
// storage format and must not change.
type Ride struct {
	RideID          string      `json:"rideId"`
	EmployeeID      string      `json:"employeeId"`
	VehicleType     VehicleType `json:"vehicleType"`
	VehicleNo       string      `json:"vehicleNo"`
	VacantSeats     int         `json:"vacantSeats"`
	Time            string      `json:"time"` // HH:MM, 24h
	PickupPoint     string      `json:"pickupPoint"`
	Destination     string      `json:"destination"`
	BookedEmployees []string    `json:"bookedEmployees"`
}

// HasBooking reports whether the employee already holds a seat on this ride.
func (r *Ride) HasBooking(employeeID string) bool {
	return slices.Contains(r.BookedEmployees, employeeID)
}

// Clone returns a deep copy of the ride.
func (r *Ride) Clone() Ride {
	c := *r
	c.BookedEmployees = append([]string(nil), r.BookedEmployees...)
	return c
}
