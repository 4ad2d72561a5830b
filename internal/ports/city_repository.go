package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Port: a boundary for retrieving City entities from a data source.
type CityRepository interface {
	// Retrieve every city in the catalog.
	ListCities(ctx context.Context) ([]domain.City, error)
	// Retrieve cities by identifier. Unknown identifiers are simply absent
	// from the result; the caller decides whether that is an error.
	GetCities(ctx context.Context, ids []string) ([]domain.City, error)
}
