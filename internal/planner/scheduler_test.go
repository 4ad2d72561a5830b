package planner

import (
	"errors"
	"testing"
	"time"

	"trip-planner-service/internal/domain"
)

func testRoute(ids ...string) domain.Route {
	r := make(domain.Route, 0, len(ids))
	for i, id := range ids {
		r = append(r, domain.City{ID: id, Name: id, Coordinates: coord(float64(i), float64(i))})
	}
	return r
}

func TestScheduleRouteEvenSplit(t *testing.T) {
	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	route := testRoute("bangkok", "ayutthaya", "chiang-mai")

	sched, err := ScheduleRoute(route, domain.TripParameters{TotalDays: 9, StartDate: start}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sched.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(sched.Entries))
	}

	total := 0
	for _, e := range sched.Entries {
		if e.AllocatedDays != 3 {
			t.Errorf("city %s allocated %d days, want 3", e.CityID, e.AllocatedDays)
		}
		total += e.AllocatedDays
	}
	if total != 9 {
		t.Fatalf("total allocated = %d, want 9", total)
	}

	if !sched.Entries[0].Arrival.Equal(start) {
		t.Errorf("first arrival = %v, want start date %v", sched.Entries[0].Arrival, start)
	}
	if sched.OverBudget {
		t.Error("schedule with zero transit should fit the budget")
	}
}

func TestScheduleRouteLeftoverDaysGoToEarlierCities(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	route := testRoute("a", "b", "c")

	sched, err := ScheduleRoute(route, domain.TripParameters{TotalDays: 7, StartDate: start}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{3, 2, 2}
	for i, e := range sched.Entries {
		if e.AllocatedDays != want[i] {
			t.Errorf("entry %d allocated %d days, want %d", i, e.AllocatedDays, want[i])
		}
	}
}

func TestScheduleRouteTransitRoundsUpToWholeHours(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	route := testRoute("a", "b")

	sched, err := ScheduleRoute(route, domain.TripParameters{TotalDays: 2, StartDate: start}, []float64{0.84})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantArrival := start.Add(24*time.Hour + time.Hour)
	if !sched.Entries[1].Arrival.Equal(wantArrival) {
		t.Fatalf("second arrival = %v, want %v", sched.Entries[1].Arrival, wantArrival)
	}

	// 2 allocated days + 1h transit runs past the 2-day budget.
	if !sched.OverBudget {
		t.Fatal("expected over-budget schedule")
	}
}

func TestScheduleRouteOverBudgetStillCompletes(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	route := testRoute("a", "b", "c", "d")

	sched, err := ScheduleRoute(route, domain.TripParameters{TotalDays: 4, StartDate: start}, []float64{30, 30, 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sched.Entries) != 4 {
		t.Fatalf("entries = %d, want 4 (no city dropped)", len(sched.Entries))
	}
	if !sched.OverBudget {
		t.Fatal("expected over-budget schedule")
	}
	for i, e := range sched.Entries {
		if e.Departure.Before(e.Arrival) {
			t.Errorf("entry %d departs before arriving", i)
		}
	}
}

func TestScheduleRouteErrors(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := ScheduleRoute(domain.Route{}, domain.TripParameters{TotalDays: 3, StartDate: start}, nil)
	if !errors.Is(err, domain.ErrEmptyRoute) {
		t.Errorf("empty route: got %v, want ErrEmptyRoute", err)
	}

	_, err = ScheduleRoute(testRoute("a"), domain.TripParameters{TotalDays: 0, StartDate: start}, nil)
	if !errors.Is(err, domain.ErrNonPositiveDays) {
		t.Errorf("zero days: got %v, want ErrNonPositiveDays", err)
	}

	_, err = ScheduleRoute(testRoute("a", "b"), domain.TripParameters{TotalDays: 2, StartDate: start}, []float64{1, 2, 3})
	if err == nil {
		t.Error("expected error for mismatched leg durations")
	}
}

func TestScheduleRouteMoreCitiesThanDays(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	route := testRoute("a", "b", "c", "d", "e")

	sched, err := ScheduleRoute(route, domain.TripParameters{TotalDays: 2, StartDate: start}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, 1, 0, 0, 0}
	total := 0
	for i, e := range sched.Entries {
		if e.AllocatedDays != want[i] {
			t.Errorf("entry %d allocated %d days, want %d", i, e.AllocatedDays, want[i])
		}
		total += e.AllocatedDays
	}
	if total != 2 {
		t.Fatalf("total allocated = %d, want 2", total)
	}
}
