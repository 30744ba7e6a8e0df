package service

import "errors"

var (
	// ErrInvalidEmployeeID is returned when an employee ID is empty.
	ErrInvalidEmployeeID = errors.New("invalid employee id")

	// ErrInvalidRideID is returned when a ride ID is empty.
	ErrInvalidRideID = errors.New("invalid ride id")

	// ErrInvalidVehicleType is returned when the vehicle type is not Bike or Car.
	ErrInvalidVehicleType = errors.New("invalid vehicle type")

	// ErrInvalidVehicleNo is returned when the vehicle number is empty.
	ErrInvalidVehicleNo = errors.New("invalid vehicle number")

	// ErrInvalidSeatCount is returned when the vacant seat count is negative.
	ErrInvalidSeatCount = errors.New("invalid seat count")

	// ErrInvalidRideTime is returned when the ride time is not a valid HH:MM value.
	ErrInvalidRideTime = errors.New("invalid ride time")

	// ErrInvalidRoute is returned when pickup point or destination is empty.
	ErrInvalidRoute = errors.New("invalid route")

	// ErrRideExists is returned when the employee has already posted a ride.
	ErrRideExists = errors.New("employee has already created a ride")

	// ErrRideNotFound is returned when no ride matches the requested ID.
	ErrRideNotFound = errors.New("ride not found")

	// ErrOwnRide is returned when an employee tries to book their own ride.
	ErrOwnRide = errors.New("cannot book own ride")

	// ErrAlreadyBooked is returned when the employee already holds a seat on the ride.
	ErrAlreadyBooked = errors.New("ride already booked by employee")

	// ErrNoVacantSeats is returned when the ride has no seats left.
	ErrNoVacantSeats = errors.New("no vacant seats left")
)
