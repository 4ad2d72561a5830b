package geo

import (
	"fmt"
	"math"

	"trip-planner-service/internal/domain"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two coordinates using
// the haversine formula. Symmetric in its arguments; zero for identical points.
func DistanceKm(a, b domain.Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("distance: %w", err)
	}
	if err := b.Validate(); err != nil {
		return 0, fmt.Errorf("distance: %w", err)
	}

	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c, nil
}
