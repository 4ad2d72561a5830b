package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Port: a best-effort cache in front of the city catalog.
// Implementations may lose entries at any time; callers must treat a miss
// and a cache failure the same way.
type CityCache interface {
	// Fetch cached cities by identifier. Misses are absent from the map.
	GetMany(ctx context.Context, ids []string) (map[string]domain.City, error)
	// Store cities for later retrieval.
	SetMany(ctx context.Context, cities []domain.City) error
}
