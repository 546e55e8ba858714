package worker

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/TopsellHQ/topsell_api/internal/service"
)

// CatalogSyncWorker periodically refreshes the cached upstream catalog
// for every country in the index set, keeping snapshots warm so
// storefront requests rarely pay for a live fetch.
type CatalogSyncWorker struct {
	catalogSvc *service.CatalogService
	interval   time.Duration
}

// NewCatalogSyncWorker constructs a CatalogSyncWorker.
func NewCatalogSyncWorker(catalogSvc *service.CatalogService, interval time.Duration) *CatalogSyncWorker {
	return &CatalogSyncWorker{
		catalogSvc: catalogSvc,
		interval:   interval,
	}
}

// Start begins the periodic refresh loop and listens for context
// cancellation. Each pass is scheduled at the configured interval plus
// up to 10% jitter.
func (w *CatalogSyncWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting catalog sync worker")

	// Run immediately on start
	w.run(ctx)

	timer := time.NewTimer(w.nextDelay())
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			w.run(ctx)
			timer.Reset(w.nextDelay())
		case <-ctx.Done():
			log.Info().Msg("Catalog sync worker stopped")
			return
		}
	}
}

func (w *CatalogSyncWorker) nextDelay() time.Duration {
	jitter := time.Duration(rand.Int63n(int64(w.interval)/10 + 1))
	return w.interval + jitter
}

// run refreshes the live catalog for every indexed country. Sandbox
// catalogs are fixture-served, so a cold sandbox cache costs nothing
// and is left to refill on demand.
func (w *CatalogSyncWorker) run(ctx context.Context) {
	countries, err := w.catalogSvc.CachedCountries(ctx, false)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list indexed catalog countries")
		return
	}
	if len(countries) == 0 {
		return
	}

	start := time.Now()
	refreshed := 0
	for _, cc := range countries {
		if ctx.Err() != nil {
			return
		}
		if err := w.catalogSvc.RefreshCountry(ctx, cc, false); err != nil {
			log.Error().Err(err).Str("country", cc).Msg("Catalog refresh failed")
			continue
		}
		refreshed++
	}

	log.Info().
		Int("countries", len(countries)).
		Int("refreshed", refreshed).
		Dur("duration", time.Since(start)).
		Msg("Catalog sync completed")
}
