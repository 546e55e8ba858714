package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

// SettingsRepository provides data access methods for the
// storefront_settings and resale_settings tables.
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetStorefront fetches the storefront settings row for an organization.
func (r *SettingsRepository) GetStorefront(orgID int) (*models.StorefrontSettings, error) {
	query := `SELECT id, organization_id, plans_enabled, topups_enabled, all_countries_enabled,
                     enabled_countries, discount, min_quantity, max_quantity, created_at, updated_at
              FROM storefront_settings
              WHERE organization_id = $1`

	row := r.db.QueryRowx(query, orgID)

	var s models.StorefrontSettings
	// Explicit scan to use pq.Array for the TEXT[] field.
	if err := row.Scan(
		&s.ID,
		&s.OrganizationID,
		&s.PlansEnabled,
		&s.TopupsEnabled,
		&s.AllCountriesEnabled,
		pq.Array(&s.EnabledCountries),
		&s.Discount,
		&s.MinQuantity,
		&s.MaxQuantity,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertStorefront writes the full storefront settings row for an
// organization, creating it on first save.
func (r *SettingsRepository) UpsertStorefront(s *models.StorefrontSettings) error {
	query := `INSERT INTO storefront_settings (organization_id, plans_enabled, topups_enabled,
                                               all_countries_enabled, enabled_countries, discount,
                                               min_quantity, max_quantity)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
              ON CONFLICT (organization_id) DO UPDATE
              SET plans_enabled = EXCLUDED.plans_enabled,
                  topups_enabled = EXCLUDED.topups_enabled,
                  all_countries_enabled = EXCLUDED.all_countries_enabled,
                  enabled_countries = EXCLUDED.enabled_countries,
                  discount = EXCLUDED.discount,
                  min_quantity = EXCLUDED.min_quantity,
                  max_quantity = EXCLUDED.max_quantity,
                  updated_at = NOW()
              RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(query,
		s.OrganizationID,
		s.PlansEnabled,
		s.TopupsEnabled,
		s.AllCountriesEnabled,
		pq.Array(s.EnabledCountries),
		s.Discount,
		s.MinQuantity,
		s.MaxQuantity,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// GetResale fetches the resale settings row for one organization+SKU.
func (r *SettingsRepository) GetResale(orgID int, skuCode string) (*models.ResaleSettings, error) {
	query := `SELECT id, organization_id, sku_code, default_price, allowed_countries, blocked_countries,
                     custom_pricing_enabled, price_by_country, discount, min_quantity, max_quantity,
                     created_at, updated_at
              FROM resale_settings
              WHERE organization_id = $1 AND sku_code = $2`

	row := r.db.QueryRowx(query, orgID, skuCode)

	var s models.ResaleSettings
	if err := row.Scan(
		&s.ID,
		&s.OrganizationID,
		&s.SkuCode,
		&s.DefaultPrice,
		pq.Array(&s.AllowedCountries),
		pq.Array(&s.BlockedCountries),
		&s.CustomPricingEnabled,
		&s.PriceByCountry,
		&s.Discount,
		&s.MinQuantity,
		&s.MaxQuantity,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListResaleByOrganization retrieves every resale settings row for an
// organization keyed by SKU code, the shape the pricing pipeline wants.
func (r *SettingsRepository) ListResaleByOrganization(orgID int) (map[string]*models.ResaleSettings, error) {
	query := `SELECT id, organization_id, sku_code, default_price, allowed_countries, blocked_countries,
                     custom_pricing_enabled, price_by_country, discount, min_quantity, max_quantity,
                     created_at, updated_at
              FROM resale_settings
              WHERE organization_id = $1`

	rows, err := r.db.Queryx(query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]*models.ResaleSettings)
	for rows.Next() {
		var s models.ResaleSettings
		if err := rows.Scan(
			&s.ID,
			&s.OrganizationID,
			&s.SkuCode,
			&s.DefaultPrice,
			pq.Array(&s.AllowedCountries),
			pq.Array(&s.BlockedCountries),
			&s.CustomPricingEnabled,
			&s.PriceByCountry,
			&s.Discount,
			&s.MinQuantity,
			&s.MaxQuantity,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		settings[s.SkuCode] = &s
	}

	return settings, rows.Err()
}

// UpsertResale writes the full resale settings row for one
// organization+SKU, creating it on first save.
func (r *SettingsRepository) UpsertResale(s *models.ResaleSettings) error {
	query := `INSERT INTO resale_settings (organization_id, sku_code, default_price, allowed_countries,
                                           blocked_countries, custom_pricing_enabled, price_by_country,
                                           discount, min_quantity, max_quantity)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
              ON CONFLICT (organization_id, sku_code) DO UPDATE
              SET default_price = EXCLUDED.default_price,
                  allowed_countries = EXCLUDED.allowed_countries,
                  blocked_countries = EXCLUDED.blocked_countries,
                  custom_pricing_enabled = EXCLUDED.custom_pricing_enabled,
                  price_by_country = EXCLUDED.price_by_country,
                  discount = EXCLUDED.discount,
                  min_quantity = EXCLUDED.min_quantity,
                  max_quantity = EXCLUDED.max_quantity,
                  updated_at = NOW()
              RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(query,
		s.OrganizationID,
		s.SkuCode,
		s.DefaultPrice,
		pq.Array(s.AllowedCountries),
		pq.Array(s.BlockedCountries),
		s.CustomPricingEnabled,
		s.PriceByCountry,
		s.Discount,
		s.MinQuantity,
		s.MaxQuantity,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// DeleteResale removes the resale settings row for one organization+SKU.
func (r *SettingsRepository) DeleteResale(orgID int, skuCode string) error {
	query := `DELETE FROM resale_settings WHERE organization_id = $1 AND sku_code = $2`
	_, err := r.db.Exec(query, orgID, skuCode)
	return err
}
