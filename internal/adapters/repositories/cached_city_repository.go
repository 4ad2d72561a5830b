package repositories

import (
	"context"
	"log"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// CachedCityRepository is a read-through cache over another CityRepository.
// Cache failures are logged and treated as misses: the catalog stays the
// source of truth and the cache is purely an optimization.
type CachedCityRepository struct {
	Next  ports.CityRepository
	Cache ports.CityCache
}

func NewCachedCityRepository(next ports.CityRepository, cache ports.CityCache) *CachedCityRepository {
	return &CachedCityRepository{Next: next, Cache: cache}
}

// Full listings always go to the underlying catalog.
func (c *CachedCityRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	return c.Next.ListCities(ctx)
}

func (c *CachedCityRepository) GetCities(ctx context.Context, ids []string) ([]domain.City, error) {
	cached, err := c.Cache.GetMany(ctx, ids)
	if err != nil {
		log.Printf("city cache read failed (falling back to repository): %v", err)
		cached = nil
	}

	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := cached[id]; !ok {
			missing = append(missing, id)
		}
	}

	var fetched []domain.City
	if len(missing) > 0 {
		fetched, err = c.Next.GetCities(ctx, missing)
		if err != nil {
			return nil, err
		}

		if len(fetched) > 0 {
			if err := c.Cache.SetMany(ctx, fetched); err != nil {
				log.Printf("city cache write failed: %v", err)
			}
		}
	}

	byID := make(map[string]domain.City, len(cached)+len(fetched))
	for id, city := range cached {
		byID[id] = city
	}
	for _, city := range fetched {
		byID[city.ID] = city
	}

	// Preserve request order; unknown identifiers stay absent.
	out := make([]domain.City, 0, len(byID))
	for _, id := range ids {
		if city, ok := byID[id]; ok {
			out = append(out, city)
		}
	}
	return out, nil
}
