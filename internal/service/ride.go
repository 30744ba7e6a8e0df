package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"carpool/internal/domain"
	"carpool/internal/store"
)

// RideService enforces ride creation and booking rules on top of a RideStore.
// It is the only place domain invariants are checked: every operation is a
// whole-collection load-mutate-save round trip through the store.
type RideService struct {
	store store.RideStore

	// Serializes load-mutate-save cycles against concurrent handler
	// goroutines. Cross-process writers remain unsupported.
	mu sync.Mutex
}

// NewRideService creates a new RideService backed by the given store.
func NewRideService(rideStore store.RideStore) *RideService {
	return &RideService{store: rideStore}
}

// CreateRideRequest contains the parameters for posting a ride offer.
// RideID and the booking set are assigned by the service.
type CreateRideRequest struct {
	EmployeeID  string
	VehicleType string
	VehicleNo   string
	VacantSeats int
	Time        string // HH:MM, 24h
	PickupPoint string
	Destination string
}

// GetRides returns the full ride collection in insertion order.
func (s *RideService) GetRides(ctx context.Context) ([]domain.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}

// AddRide validates the request, assigns a ride ID and persists the new ride.
// An employee may hold at most one posted ride at a time.
func (s *RideService) AddRide(ctx context.Context, req CreateRideRequest) (*domain.Ride, error) {
	vehicleType, err := s.validateCreateRequest(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rides, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rides {
		if rides[i].EmployeeID == req.EmployeeID {
			return nil, ErrRideExists
		}
	}

	ride := domain.Ride{
		RideID:          uuid.New().String(),
		EmployeeID:      req.EmployeeID,
		VehicleType:     vehicleType,
		VehicleNo:       req.VehicleNo,
		VacantSeats:     req.VacantSeats,
		Time:            req.Time,
		PickupPoint:     req.PickupPoint,
		Destination:     req.Destination,
		BookedEmployees: make([]string, 0),
	}

	rides = append(rides, ride)
	if err := s.store.Save(ctx, rides); err != nil {
		return nil, err
	}

	return &ride, nil
}

// BookRide claims one seat on the identified ride for the employee. A
// rejected booking is a normal outcome reported through one of the sentinel
// errors, checked in a fixed order: ErrRideNotFound, ErrOwnRide,
// ErrAlreadyBooked, ErrNoVacantSeats. The collection is only persisted when
// the booking succeeds.
func (s *RideService) BookRide(ctx context.Context, rideID, employeeID string) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rides, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var ride *domain.Ride
	for i := range rides {
		if rides[i].RideID == rideID {
			ride = &rides[i]
			break
		}
	}
	if ride == nil {
		return nil, ErrRideNotFound
	}

	if ride.EmployeeID == employeeID {
		return nil, ErrOwnRide
	}
	if ride.HasBooking(employeeID) {
		return nil, ErrAlreadyBooked
	}
	if ride.VacantSeats <= 0 {
		return nil, ErrNoVacantSeats
	}

	ride.BookedEmployees = append(ride.BookedEmployees, employeeID)
	ride.VacantSeats--

	if err := s.store.Save(ctx, rides); err != nil {
		return nil, err
	}

	booked := ride.Clone()
	return &booked, nil
}

// validateCreateRequest validates the create ride request.
func (s *RideService) validateCreateRequest(req CreateRideRequest) (domain.VehicleType, error) {
	if req.EmployeeID == "" {
		return "", ErrInvalidEmployeeID
	}

	vehicleType, err := domain.ParseVehicleType(req.VehicleType)
	if err != nil {
		return "", ErrInvalidVehicleType
	}

	if req.VehicleNo == "" {
		return "", ErrInvalidVehicleNo
	}

	// Negative capacity is rejected; zero is allowed and simply never books.
	if req.VacantSeats < 0 {
		return "", ErrInvalidSeatCount
	}

	if _, err := domain.ParseRideTime(req.Time); err != nil {
		return "", ErrInvalidRideTime
	}

	if req.PickupPoint == "" || req.Destination == "" {
		return "", ErrInvalidRoute
	}

	return vehicleType, nil
}
