package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "topsell")
	t.Setenv("DB_NAME", "topsell")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("CATALOG_CACHE_TTL", "")
	t.Setenv("CATALOG_SYNC_INTERVAL", "")
	t.Setenv("STOREFRONT_MAX_ITEMS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Catalog.CacheTTL != 15*time.Minute {
		t.Errorf("Catalog.CacheTTL = %s, want 15m", cfg.Catalog.CacheTTL)
	}
	if cfg.Worker.CatalogSyncInterval != 10*time.Minute {
		t.Errorf("Worker.CatalogSyncInterval = %s, want 10m", cfg.Worker.CatalogSyncInterval)
	}
	if cfg.Storefront.MaxListingItems != 100 {
		t.Errorf("Storefront.MaxListingItems = %d, want 100", cfg.Storefront.MaxListingItems)
	}
	if cfg.DTOne.BaseURL == "" {
		t.Error("DTOne.BaseURL default missing")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CATALOG_CACHE_TTL", "90s")
	t.Setenv("STOREFRONT_MAX_ITEMS", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Catalog.CacheTTL != 90*time.Second {
		t.Errorf("Catalog.CacheTTL = %s, want 90s", cfg.Catalog.CacheTTL)
	}
	if cfg.Storefront.MaxListingItems != 25 {
		t.Errorf("Storefront.MaxListingItems = %d, want 25", cfg.Storefront.MaxListingItems)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CATALOG_CACHE_TTL", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted an unparseable duration")
	}
}

func TestLoadRequiresDatabaseAndSecret(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("JWT_SECRET", "x")
	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted missing database config")
	}

	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted a missing JWT secret")
	}
}
