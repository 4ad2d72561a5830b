package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/domain"
)

func testCache(t *testing.T) (*RedisCityCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCityCache(client, time.Hour), srv
}

func TestRedisCityCacheRoundTrip(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	cities := []domain.City{
		{ID: "bangkok", Name: "Bangkok", Coordinates: &domain.Coordinate{Latitude: 13.75, Longitude: 100.49}},
		{ID: "nowhere", Name: "Nowhere"},
	}

	if err := c.SetMany(ctx, cities); err != nil {
		t.Fatalf("SetMany: %v", err)
	}

	got, err := c.GetMany(ctx, []string{"bangkok", "nowhere", "missing"})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}

	bangkok, ok := got["bangkok"]
	if !ok || bangkok.Coordinates == nil || bangkok.Coordinates.Latitude != 13.75 {
		t.Fatalf("bangkok entry = %+v, want cached coordinates", bangkok)
	}

	nowhere, ok := got["nowhere"]
	if !ok || nowhere.Coordinates != nil {
		t.Fatalf("nowhere entry = %+v, want entry without coordinates", nowhere)
	}

	if _, ok := got["missing"]; ok {
		t.Fatal("missing id should not appear in result")
	}
}

func TestRedisCityCacheExpiry(t *testing.T) {
	c, srv := testCache(t)
	ctx := context.Background()

	if err := c.SetMany(ctx, []domain.City{{ID: "a", Name: "A"}}); err != nil {
		t.Fatalf("SetMany: %v", err)
	}

	srv.FastForward(2 * time.Hour)

	got, err := c.GetMany(ctx, []string{"a"})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d entries after expiry, want 0", len(got))
	}
}

func TestRedisCityCacheUndecodableEntryIsAMiss(t *testing.T) {
	c, srv := testCache(t)
	ctx := context.Background()

	srv.Set("city:bad", "{not json")

	got, err := c.GetMany(ctx, []string{"bad"})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d entries, want corrupt entry treated as miss", len(got))
	}
}
