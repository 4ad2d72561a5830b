package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

const cityKeyPrefix = "city:"

// RedisCityCache is a redis-backed implementation of the CityCache port.
// Entries expire after TTL so catalog updates eventually propagate.
type RedisCityCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCityCache(client *redis.Client, ttl time.Duration) *RedisCityCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisCityCache{Client: client, TTL: ttl}
}

type cachedCity struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Coordinates *domain.Coordinate `json:"coordinates,omitempty"`
}

// Fetch cached cities by identifier with a single MGET.
func (c *RedisCityCache) GetMany(ctx context.Context, ids []string) (_ map[string]domain.City, err error) {
	defer obs.Time(ctx, "cities.cache.GetMany")(&err)

	if c.Client == nil {
		return nil, errors.New("city cache: redis client is nil")
	}
	if len(ids) == 0 {
		return map[string]domain.City{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, cityKeyPrefix+id)
	}

	vals, err := c.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("city cache: mget: %w", err)
	}

	out := make(map[string]domain.City, len(ids))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue // miss
		}

		var cc cachedCity
		if err := json.Unmarshal([]byte(raw), &cc); err != nil {
			// Treat undecodable entries as misses; they will be overwritten
			// on the next write-through.
			continue
		}
		out[ids[i]] = domain.City{ID: cc.ID, Name: cc.Name, Coordinates: cc.Coordinates}
	}

	return out, nil
}

// Store cities with expiry using a single pipeline round trip.
func (c *RedisCityCache) SetMany(ctx context.Context, cities []domain.City) (err error) {
	defer obs.Time(ctx, "cities.cache.SetMany")(&err)

	if c.Client == nil {
		return errors.New("city cache: redis client is nil")
	}
	if len(cities) == 0 {
		return nil
	}

	pipe := c.Client.Pipeline()
	for _, city := range cities {
		raw, err := json.Marshal(cachedCity{ID: city.ID, Name: city.Name, Coordinates: city.Coordinates})
		if err != nil {
			return fmt.Errorf("city cache: marshal city %q: %w", city.ID, err)
		}
		pipe.Set(ctx, cityKeyPrefix+city.ID, raw, c.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("city cache: pipeline exec: %w", err)
	}
	return nil
}
