package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"showing-route-service/internal/domain"
	"showing-route-service/internal/ports"
)

// RedisLookupCache is a Redis-backed cache for MLS lookup results, keeping
// repeated document scans from hammering the external resolution service.
type RedisLookupCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLookupCache(client *redis.Client, ttl time.Duration) *RedisLookupCache {
	return &RedisLookupCache{client: client, ttl: ttl}
}

// cachedLookup is the stored wire shape; domain types stay free of
// serialization tags.
type cachedLookup struct {
	Found         bool      `json:"found"`
	Reason        string    `json:"reason,omitempty"`
	MLSNumber     string    `json:"mls_number,omitempty"`
	Address       string    `json:"address,omitempty"`
	Price         string    `json:"price,omitempty"`
	Bedrooms      string    `json:"bedrooms,omitempty"`
	Bathrooms     string    `json:"bathrooms,omitempty"`
	SquareFootage string    `json:"square_footage,omitempty"`
	PropertyType  string    `json:"property_type,omitempty"`
	ResolvedAt    time.Time `json:"resolved_at,omitempty"`
}

func lookupKey(mlsNumber string) string {
	return "listing:lookup:" + mlsNumber
}

// Get returns the cached lookup result and whether one exists.
func (c *RedisLookupCache) Get(ctx context.Context, mlsNumber string) (ports.LookupResult, bool, error) {
	if c.client == nil {
		return ports.LookupResult{}, false, errors.New("lookup cache: client is nil")
	}
	if mlsNumber == "" {
		return ports.LookupResult{}, false, errors.New("get lookup cache: mls number must not be empty")
	}

	raw, err := c.client.Get(ctx, lookupKey(mlsNumber)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.LookupResult{}, false, nil
	}
	if err != nil {
		return ports.LookupResult{}, false, fmt.Errorf("get lookup cache: %w", err)
	}

	var stored cachedLookup
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return ports.LookupResult{}, false, fmt.Errorf("get lookup cache: unmarshal: %w", err)
	}

	return ports.LookupResult{
		Found:  stored.Found,
		Reason: stored.Reason,
		Listing: domain.Listing{
			MLSNumber:     stored.MLSNumber,
			Address:       stored.Address,
			Price:         stored.Price,
			Bedrooms:      stored.Bedrooms,
			Bathrooms:     stored.Bathrooms,
			SquareFootage: stored.SquareFootage,
			PropertyType:  stored.PropertyType,
			ResolvedAt:    stored.ResolvedAt,
		},
	}, true, nil
}

// Put stores a lookup result under the configured TTL.
func (c *RedisLookupCache) Put(ctx context.Context, mlsNumber string, result ports.LookupResult) error {
	if c.client == nil {
		return errors.New("lookup cache: client is nil")
	}
	if mlsNumber == "" {
		return errors.New("put lookup cache: mls number must not be empty")
	}

	stored := cachedLookup{
		Found:         result.Found,
		Reason:        result.Reason,
		MLSNumber:     result.Listing.MLSNumber,
		Address:       result.Listing.Address,
		Price:         result.Listing.Price,
		Bedrooms:      result.Listing.Bedrooms,
		Bathrooms:     result.Listing.Bathrooms,
		SquareFootage: result.Listing.SquareFootage,
		PropertyType:  result.Listing.PropertyType,
		ResolvedAt:    result.Listing.ResolvedAt,
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("put lookup cache: marshal: %w", err)
	}

	if err := c.client.Set(ctx, lookupKey(mlsNumber), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("put lookup cache: %w", err)
	}

	return nil
}
