package store

import (
	"context"
	"reflect"
	"testing"

	"carpool/internal/domain"
)

func sampleRides() []domain.Ride {
	return []domain.Ride{
		{
			RideID:          "ride-1",
			EmployeeID:      "E001",
			VehicleType:     domain.VehicleTypeCar,
			VehicleNo:       "KA-01-AB-1234",
			VacantSeats:     2,
			Time:            "10:00",
			PickupPoint:     "Main Gate",
			Destination:     "Tech Park",
			BookedEmployees: []string{"E002"},
		},
		{
			RideID:          "ride-2",
			EmployeeID:      "E003",
			VehicleType:     domain.VehicleTypeBike,
			VehicleNo:       "KA-02-XY-9999",
			VacantSeats:     1,
			Time:            "18:30",
			PickupPoint:     "Tech Park",
			Destination:     "Main Gate",
			BookedEmployees: []string{},
		},
	}
}

func TestMemoryStore_LoadEmpty(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()

	rides, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if rides == nil {
		t.Fatal("expected empty collection, got nil")
	}
	if len(rides) != 0 {
		t.Errorf("expected 0 rides, got %d", len(rides))
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	want := sampleRides()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestMemoryStore_LoadIsolation(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Save(ctx, sampleRides()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	first, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// Mutating a loaded copy must not leak into the store.
	first[0].VacantSeats = 0
	first[0].BookedEmployees = append(first[0].BookedEmployees, "E099")

	second, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if second[0].VacantSeats != 2 {
		t.Errorf("expected stored seat count 2, got %d", second[0].VacantSeats)
	}
	if len(second[0].BookedEmployees) != 1 {
		t.Errorf("expected stored booking set unchanged, got %v", second[0].BookedEmployees)
	}
}
