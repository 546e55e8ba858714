package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

// CatalogSnapshot is one cached upstream catalog for a destination
// country.
type CatalogSnapshot struct {
	CountryISO string               `json:"countryIso"`
	Items      []models.CatalogItem `json:"items"`
	FetchedAt  time.Time            `json:"fetchedAt"`
}

// CatalogCache stores per-country upstream catalogs in Redis.
// Alongside each snapshot it maintains an index set of the countries
// fetched so far; the sync worker walks that set to keep snapshots
// warm. Keys are split by environment so sandbox traffic never sees
// live data.
type CatalogCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewCatalogCache creates a new CatalogCache with the given snapshot TTL.
func NewCatalogCache(redis *RedisClient, ttl time.Duration) *CatalogCache {
	return &CatalogCache{redis: redis, ttl: ttl}
}

func (c *CatalogCache) key(env, country string) string {
	return fmt.Sprintf("catalog:%s:%s", env, country)
}

func (c *CatalogCache) indexKey(env string) string {
	return fmt.Sprintf("catalog:countries:%s", env)
}

// Set stores a country snapshot and records the country in the index
// set. The index set carries no TTL; stale members simply trigger a
// refetch on the next sync pass.
func (c *CatalogCache) Set(ctx context.Context, env, country string, items []models.CatalogItem) error {
	snap := CatalogSnapshot{
		CountryISO: country,
		Items:      items,
		FetchedAt:  time.Now(),
	}
	jsonData, err := json.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog snapshot: %w", err)
	}
	if err := c.redis.Set(ctx, c.key(env, country), string(jsonData), c.ttl); err != nil {
		return fmt.Errorf("failed to set catalog snapshot: %w", err)
	}
	if err := c.redis.SAdd(ctx, c.indexKey(env), country); err != nil {
		return fmt.Errorf("failed to index catalog country: %w", err)
	}
	return nil
}

// Get retrieves the snapshot for a country. A cache miss returns
// (nil, nil).
func (c *CatalogCache) Get(ctx context.Context, env, country string) (*CatalogSnapshot, error) {
	jsonData, err := c.redis.Get(ctx, c.key(env, country))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snap CatalogSnapshot
	if err := json.Unmarshal([]byte(jsonData), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog snapshot: %w", err)
	}
	return &snap, nil
}

// Countries lists every country present in the index set.
func (c *CatalogCache) Countries(ctx context.Context, env string) ([]string, error) {
	return c.redis.SMembers(ctx, c.indexKey(env))
}
