package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/TopsellHQ/topsell_api/internal/cache"
	"github.com/TopsellHQ/topsell_api/internal/countries"
	"github.com/TopsellHQ/topsell_api/internal/models"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

// CatalogService serves per-country upstream catalogs, reading through
// the Redis snapshot cache. Live and sandbox environments resolve to
// different providers and never share cache keys.
type CatalogService struct {
	catalogCache *cache.CatalogCache
	live         CatalogProvider
	sandbox      CatalogProvider
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(catalogCache *cache.CatalogCache, live, sandbox CatalogProvider) *CatalogService {
	return &CatalogService{
		catalogCache: catalogCache,
		live:         live,
		sandbox:      sandbox,
	}
}

func catalogEnv(isSandbox bool) string {
	if isSandbox {
		return "sandbox"
	}
	return "live"
}

func (s *CatalogService) provider(isSandbox bool) CatalogProvider {
	if isSandbox {
		return s.sandbox
	}
	return s.live
}

// GetCatalog returns the catalog for a destination country, fetching
// from the provider on cache miss. Cache failures degrade to a direct
// fetch instead of failing the request.
func (s *CatalogService) GetCatalog(ctx context.Context, alpha2 string, isSandbox bool) ([]models.CatalogItem, error) {
	c, ok := countries.Lookup(alpha2)
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrInvalidCountry, alpha2)
	}
	env := catalogEnv(isSandbox)

	snap, err := s.catalogCache.Get(ctx, env, c.Alpha2)
	if err != nil {
		log.Warn().Err(err).Str("country", c.Alpha2).Str("env", env).Msg("Catalog cache read failed")
	}
	if snap != nil {
		return snap.Items, nil
	}

	return s.fetchAndCache(ctx, env, c.Alpha2, isSandbox)
}

// RefreshCountry refetches one country's catalog and rewrites its
// snapshot. The sync worker calls this for every indexed country.
func (s *CatalogService) RefreshCountry(ctx context.Context, alpha2 string, isSandbox bool) error {
	c, ok := countries.Lookup(alpha2)
	if !ok {
		return fmt.Errorf("%w: %s", utils.ErrInvalidCountry, alpha2)
	}
	_, err := s.fetchAndCache(ctx, catalogEnv(isSandbox), c.Alpha2, isSandbox)
	return err
}

// CachedCountries lists the countries with snapshots in the index set.
func (s *CatalogService) CachedCountries(ctx context.Context, isSandbox bool) ([]string, error) {
	return s.catalogCache.Countries(ctx, catalogEnv(isSandbox))
}

func (s *CatalogService) fetchAndCache(ctx context.Context, env, alpha2 string, isSandbox bool) ([]models.CatalogItem, error) {
	items, err := s.provider(isSandbox).FetchCatalog(ctx, alpha2)
	if err != nil {
		return nil, err
	}

	if err := s.catalogCache.Set(ctx, env, alpha2, items); err != nil {
		log.Warn().Err(err).Str("country", alpha2).Str("env", env).Msg("Catalog cache write failed")
	}

	log.Info().
		Str("country", alpha2).
		Str("env", env).
		Int("items", len(items)).
		Msg("Catalog fetched")

	return items, nil
}
