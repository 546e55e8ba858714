package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DiscountConfig is the discount block embedded in resale or
// storefront settings. It is the fallback discount path used when an
// organization has no registry discount configured for a flow, and
// carries no usage budget or amount cap.
type DiscountConfig struct {
	Enabled             bool             `json:"enabled"`
	Name                string           `json:"name,omitempty"`
	Type                DiscountType     `json:"type,omitempty"`
	DiscountValue       decimal.Decimal  `json:"value"`
	StartDate           *time.Time       `json:"startDate,omitempty"`
	EndDate             *time.Time       `json:"endDate,omitempty"`
	MinPurchaseAmount   *decimal.Decimal `json:"minPurchaseAmount,omitempty"`
	ApplicableCountries []string         `json:"applicableCountries,omitempty"`
}

// Value implements driver.Valuer, storing the config as JSONB.
func (c DiscountConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB columns.
func (c *DiscountConfig) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = DiscountConfig{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return fmt.Errorf("discount config: cannot scan %T", src)
}

// PriceMap maps upper-case ISO 3166-1 alpha-2 codes to a
// country-specific sell price. Stored as JSONB.
type PriceMap map[string]decimal.Decimal

// Value implements driver.Valuer.
func (m PriceMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *PriceMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = PriceMap{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return fmt.Errorf("price map: cannot scan %T", src)
}

// QuantityLimits bounds the purchasable quantity for one product.
// Zero means unbounded on that side; bounds are inclusive.
type QuantityLimits struct {
	MinQuantity int `json:"minQuantity"`
	MaxQuantity int `json:"maxQuantity"`
}

// StorefrontSettings is the organization-level storefront policy:
// which product families are listed, which destination countries are
// enabled, and the storefront-wide fallback discount.
type StorefrontSettings struct {
	ID                  int            `db:"id" json:"id"`
	OrganizationID      int            `db:"organization_id" json:"organizationId"`
	PlansEnabled        bool           `db:"plans_enabled" json:"plansEnabled"`
	TopupsEnabled       bool           `db:"topups_enabled" json:"topupsEnabled"`
	AllCountriesEnabled bool           `db:"all_countries_enabled" json:"allCountriesEnabled"`
	EnabledCountries    []string       `db:"enabled_countries" json:"enabledCountries"`
	Discount            DiscountConfig `db:"discount" json:"discount"`
	MinQuantity         int            `db:"min_quantity" json:"minQuantity"`
	MaxQuantity         int            `db:"max_quantity" json:"maxQuantity"`
	CreatedAt           time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time      `db:"updated_at" json:"updatedAt"`
}

// Limits returns the storefront default quantity bounds.
func (s *StorefrontSettings) Limits() QuantityLimits {
	return QuantityLimits{MinQuantity: s.MinQuantity, MaxQuantity: s.MaxQuantity}
}

// ResaleSettings is the organization+product resale policy: country
// allow/block lists, per-country custom pricing, an embedded fallback
// discount, and quantity limits. The blocklist always wins; an empty
// allowlist allows every country.
type ResaleSettings struct {
	ID                   int             `db:"id" json:"id"`
	OrganizationID       int             `db:"organization_id" json:"organizationId"`
	SkuCode              string          `db:"sku_code" json:"skuCode"`
	DefaultPrice         decimal.Decimal `db:"default_price" json:"defaultPrice"`
	AllowedCountries     []string        `db:"allowed_countries" json:"allowedCountries"`
	BlockedCountries     []string        `db:"blocked_countries" json:"blockedCountries"`
	CustomPricingEnabled bool            `db:"custom_pricing_enabled" json:"customPricingEnabled"`
	PriceByCountry       PriceMap        `db:"price_by_country" json:"priceByCountry"`
	Discount             DiscountConfig  `db:"discount" json:"discount"`
	MinQuantity          int             `db:"min_quantity" json:"minQuantity"`
	MaxQuantity          int             `db:"max_quantity" json:"maxQuantity"`
	CreatedAt            time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time       `db:"updated_at" json:"updatedAt"`
}

// Limits returns the product quantity bounds.
func (s *ResaleSettings) Limits() QuantityLimits {
	return QuantityLimits{MinQuantity: s.MinQuantity, MaxQuantity: s.MaxQuantity}
}
