package tests

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"carpool/internal/domain"
	"carpool/internal/service"
)

// ──────────────────────────────────────────────
// 2. BOOKING RULES
// ──────────────────────────────────────────────

func seedRide(seats int, booked ...string) domain.Ride {
	if booked == nil {
		booked = make([]string, 0)
	}
	return domain.Ride{
		RideID:          "ride-1",
		EmployeeID:      "E001",
		VehicleType:     domain.VehicleTypeCar,
		VehicleNo:       "KA-01-AB-1234",
		VacantSeats:     seats,
		Time:            "10:00",
		PickupPoint:     "Main Gate",
		Destination:     "Tech Park",
		BookedEmployees: booked,
	}
}

func TestBooking_Succeeds(t *testing.T) {
	t.Parallel()

	rideStore := NewMockRideStore()
	rideStore.Seed(seedRide(2))
	rideService := service.NewRideService(rideStore)

	ride, err := rideService.BookRide(context.Background(), "ride-1", "E002")
	if err != nil {
		t.Fatalf("expected booking to succeed, got: %v", err)
	}

	if ride.VacantSeats != 1 {
		t.Errorf("expected 1 vacant seat, got %d", ride.VacantSeats)
	}
	if !reflect.DeepEqual(ride.BookedEmployees, []string{"E002"}) {
		t.Errorf("expected booked employees [E002], got %v", ride.BookedEmployees)
	}

	persisted := rideStore.GetRide("ride-1")
	if persisted.VacantSeats != 1 {
		t.Errorf("expected persisted seat count 1, got %d", persisted.VacantSeats)
	}
	if !persisted.HasBooking("E002") {
		t.Error("expected E002 in persisted booking set")
	}
}

func TestBooking_Rejections(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		ride       domain.Ride
		rideID     string
		employeeID string
		wantErr    error
	}{
		{
			name:       "ride not found",
			ride:       seedRide(2),
			rideID:     "no-such-ride",
			employeeID: "E002",
			wantErr:    service.ErrRideNotFound,
		},
		{
			name:       "owner cannot book own ride",
			ride:       seedRide(2),
			rideID:     "ride-1",
			employeeID: "E001",
			wantErr:    service.ErrOwnRide,
		},
		{
			name:       "duplicate booking",
			ride:       seedRide(1, "E002"),
			rideID:     "ride-1",
			employeeID: "E002",
			wantErr:    service.ErrAlreadyBooked,
		},
		{
			name:       "no vacant seats",
			ride:       seedRide(0, "E002"),
			rideID:     "ride-1",
			employeeID: "E003",
			wantErr:    service.ErrNoVacantSeats,
		},
		// Rule order: owner first, then duplicate, then capacity.
		{
			name:       "owner check precedes capacity",
			ride:       seedRide(0),
			rideID:     "ride-1",
			employeeID: "E001",
			wantErr:    service.ErrOwnRide,
		},
		{
			name:       "duplicate check precedes capacity",
			ride:       seedRide(0, "E002"),
			rideID:     "ride-1",
			employeeID: "E002",
			wantErr:    service.ErrAlreadyBooked,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rideStore := NewMockRideStore()
			rideStore.Seed(tc.ride)
			rideService := service.NewRideService(rideStore)

			before := rideStore.Snapshot()

			_, err := rideService.BookRide(context.Background(), tc.rideID, tc.employeeID)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}

			if rideStore.SaveCallCount != 0 {
				t.Errorf("expected no save on rejected booking, got %d", rideStore.SaveCallCount)
			}
			if !reflect.DeepEqual(before, rideStore.Snapshot()) {
				t.Error("expected collection unchanged after rejected booking")
			}
		})
	}
}

func TestBooking_SameEmployeeTwice(t *testing.T) {
	t.Parallel()

	rideStore := NewMockRideStore()
	rideStore.Seed(seedRide(2))
	rideService := service.NewRideService(rideStore)

	ctx := context.Background()

	first, err := rideService.BookRide(ctx, "ride-1", "E002")
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if first.VacantSeats != 1 {
		t.Errorf("expected 1 vacant seat after first booking, got %d", first.VacantSeats)
	}

	_, err = rideService.BookRide(ctx, "ride-1", "E002")
	if !errors.Is(err, service.ErrAlreadyBooked) {
		t.Errorf("expected ErrAlreadyBooked on second booking, got %v", err)
	}

	persisted := rideStore.GetRide("ride-1")
	if persisted.VacantSeats != 1 {
		t.Errorf("expected seat count unchanged at 1, got %d", persisted.VacantSeats)
	}
	if !reflect.DeepEqual(persisted.BookedEmployees, []string{"E002"}) {
		t.Errorf("expected booking set unchanged, got %v", persisted.BookedEmployees)
	}
}

func TestBooking_SeatsExhaust(t *testing.T) {
	t.Parallel()

	rideStore := NewMockRideStore()
	rideStore.Seed(seedRide(2))
	rideService := service.NewRideService(rideStore)

	ctx := context.Background()

	if _, err := rideService.BookRide(ctx, "ride-1", "E002"); err != nil {
		t.Fatalf("booking E002 failed: %v", err)
	}
	if _, err := rideService.BookRide(ctx, "ride-1", "E003"); err != nil {
		t.Fatalf("booking E003 failed: %v", err)
	}

	_, err := rideService.BookRide(ctx, "ride-1", "E004")
	if !errors.Is(err, service.ErrNoVacantSeats) {
		t.Errorf("expected ErrNoVacantSeats, got %v", err)
	}

	persisted := rideStore.GetRide("ride-1")
	if persisted.VacantSeats != 0 {
		t.Errorf("expected 0 vacant seats, got %d", persisted.VacantSeats)
	}
	if !reflect.DeepEqual(persisted.BookedEmployees, []string{"E002", "E003"}) {
		t.Errorf("unexpected booking set %v", persisted.BookedEmployees)
	}
}

func TestBooking_EmptyArguments(t *testing.T) {
	t.Parallel()

	rideStore := NewMockRideStore()
	rideStore.Seed(seedRide(2))
	rideService := service.NewRideService(rideStore)

	ctx := context.Background()

	if _, err := rideService.BookRide(ctx, "", "E002"); !errors.Is(err, service.ErrInvalidRideID) {
		t.Errorf("expected ErrInvalidRideID, got %v", err)
	}
	if _, err := rideService.BookRide(ctx, "ride-1", ""); !errors.Is(err, service.ErrInvalidEmployeeID) {
		t.Errorf("expected ErrInvalidEmployeeID, got %v", err)
	}
}

// ──────────────────────────────────────────────
// 3. READ SEMANTICS
// ──────────────────────────────────────────────

func TestGetRides_IdempotentReads(t *testing.T) {
	t.Parallel()

	rideStore := NewMockRideStore()
	rideService := service.NewRideService(rideStore)

	ctx := context.Background()

	req := validCreateRequest()
	if _, err := rideService.AddRide(ctx, req); err != nil {
		t.Fatalf("creation failed: %v", err)
	}

	first, err := rideService.GetRides(ctx)
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	second, err := rideService.GetRides(ctx)
	if err != nil {
		t.Fatalf("second read failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("expected consecutive reads without mutation to be equal")
	}
}

func TestGetRides_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	rideStore := NewMockRideStore()
	rideService := service.NewRideService(rideStore)

	ctx := context.Background()

	owners := []string{"E001", "E002", "E003"}
	for _, owner := range owners {
		req := validCreateRequest()
		req.EmployeeID = owner
		if _, err := rideService.AddRide(ctx, req); err != nil {
			t.Fatalf("creation for %s failed: %v", owner, err)
		}
	}

	rides, err := rideService.GetRides(ctx)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(rides) != len(owners) {
		t.Fatalf("expected %d rides, got %d", len(owners), len(rides))
	}
	for i, owner := range owners {
		if rides[i].EmployeeID != owner {
			t.Errorf("position %d: expected owner %s, got %s", i, owner, rides[i].EmployeeID)
		}
	}
}
