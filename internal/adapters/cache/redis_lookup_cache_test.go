package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"showing-route-service/internal/domain"
	"showing-route-service/internal/ports"
)

func testCache(t *testing.T) (*RedisLookupCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLookupCache(client, time.Hour), mr
}

func TestRedisLookupCacheRoundTrip(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	stored := ports.LookupResult{
		Found: true,
		Listing: domain.Listing{
			MLSNumber:     "W12372194",
			Address:       "908 - 15 BAY ST, Toronto, Ontario",
			Price:         "899000",
			Bedrooms:      "2",
			Bathrooms:     "2",
			SquareFootage: "850",
			PropertyType:  "condo",
			ResolvedAt:    time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		},
	}
	if err := c.Put(ctx, "W12372194", stored); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "W12372194")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got != stored {
		t.Errorf("cached result = %+v, want %+v", got, stored)
	}
}

func TestRedisLookupCacheMiss(t *testing.T) {
	c, _ := testCache(t)

	_, ok, err := c.Get(context.Background(), "N11858302")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected a miss for an unknown key")
	}
}

func TestRedisLookupCacheStoresNotFound(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "W99999999", ports.LookupResult{Found: false, Reason: "MLS number not found"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "W99999999")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit for the negative result")
	}
	if got.Found || got.Reason != "MLS number not found" {
		t.Errorf("cached result = %+v, want the not-found marker", got)
	}
}

func TestRedisLookupCacheEntriesExpire(t *testing.T) {
	c, mr := testCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "W12372194", ports.LookupResult{Found: true}); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	_, ok, err := c.Get(ctx, "W12372194")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected the entry to expire after the TTL")
	}
}

func TestRedisLookupCacheRejectsEmptyKey(t *testing.T) {
	c, _ := testCache(t)

	if _, _, err := c.Get(context.Background(), ""); err == nil {
		t.Error("expected error for empty mls number on get")
	}
	if err := c.Put(context.Background(), "", ports.LookupResult{}); err == nil {
		t.Error("expected error for empty mls number on put")
	}
}
