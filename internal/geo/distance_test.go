package geo

import (
	"errors"
	"math"
	"testing"

	"trip-planner-service/internal/domain"
)

func TestDistanceKmKnownPairs(t *testing.T) {
	bangkok := domain.Coordinate{Latitude: 13.75, Longitude: 100.49}
	chiangMai := domain.Coordinate{Latitude: 18.79, Longitude: 98.97}

	d, err := DistanceKm(bangkok, chiangMai)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Road distance is ~700km; great-circle is around 580km.
	if d < 550 || d > 620 {
		t.Fatalf("Bangkok-Chiang Mai distance = %.1f km, want ~580", d)
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := domain.Coordinate{Latitude: 48.85, Longitude: 2.35}
	b := domain.Coordinate{Latitude: -33.86, Longitude: 151.2}

	ab, err := DistanceKm(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := DistanceKm(b, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: %.12f vs %.12f", ab, ba)
	}
}

func TestDistanceKmIdenticalPoints(t *testing.T) {
	p := domain.Coordinate{Latitude: 13.75, Longitude: 100.49}

	d, err := DistanceKm(p, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Fatalf("distance(a,a) = %f, want 0", d)
	}
}

func TestDistanceKmInvalidCoordinate(t *testing.T) {
	good := domain.Coordinate{Latitude: 0, Longitude: 0}

	cases := []domain.Coordinate{
		{Latitude: 91, Longitude: 0},
		{Latitude: -90.5, Longitude: 0},
		{Latitude: 0, Longitude: 180.1},
		{Latitude: 0, Longitude: -181},
	}

	for _, bad := range cases {
		if _, err := DistanceKm(good, bad); !errors.Is(err, domain.ErrInvalidCoordinate) {
			t.Errorf("coordinate %+v: got err %v, want ErrInvalidCoordinate", bad, err)
		}
		if _, err := DistanceKm(bad, good); !errors.Is(err, domain.ErrInvalidCoordinate) {
			t.Errorf("coordinate %+v as first arg: got err %v, want ErrInvalidCoordinate", bad, err)
		}
	}
}
