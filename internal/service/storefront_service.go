package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nyaruka/phonenumbers"
	"github.com/shopspring/decimal"

	"github.com/TopsellHQ/topsell_api/internal/countries"
	"github.com/TopsellHQ/topsell_api/internal/models"
	"github.com/TopsellHQ/topsell_api/internal/pricing"
	"github.com/TopsellHQ/topsell_api/internal/repository"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

// StorefrontService runs the pricing pipeline for storefront requests:
// it assembles the organization's catalog, rules, discounts and
// settings, feeds them through the engine and shapes the responses.
type StorefrontService struct {
	catalogSvc   *CatalogService
	ruleRepo     *repository.PricingRuleRepository
	discountRepo *repository.DiscountRepository
	settingsRepo *repository.SettingsRepository
	maxItems     int
}

// NewStorefrontService constructs a StorefrontService. maxItems caps
// the product list in responses; the cap is presentation policy, not a
// pipeline concern.
func NewStorefrontService(
	catalogSvc *CatalogService,
	ruleRepo *repository.PricingRuleRepository,
	discountRepo *repository.DiscountRepository,
	settingsRepo *repository.SettingsRepository,
	maxItems int,
) *StorefrontService {
	return &StorefrontService{
		catalogSvc:   catalogSvc,
		ruleRepo:     ruleRepo,
		discountRepo: discountRepo,
		settingsRepo: settingsRepo,
		maxItems:     maxItems,
	}
}

// ProductListing is the storefront catalog response for one country.
type ProductListing struct {
	CountryISO   string                  `json:"countryIso"`
	Products     []models.PricedProduct  `json:"products"`
	BestDiscount *models.DiscountSummary `json:"bestDiscount,omitempty"`
	Malformed    int                     `json:"malformedSkipped"`
}

// ProductQuote is the priced response for one product and quantity.
type ProductQuote struct {
	CountryISO      string                  `json:"countryIso"`
	Product         models.PricedProduct    `json:"product"`
	AppliedDiscount *models.DiscountSummary `json:"appliedDiscount,omitempty"`
	Quantity        int                     `json:"quantity"`
	LineTotal       decimal.Decimal         `json:"lineTotal"`
}

// QuantityError reports a quantity outside the configured bounds. It
// is a validation outcome, not a fault; handlers surface the reason to
// the shopper.
type QuantityError struct {
	Reason string
}

func (e *QuantityError) Error() string { return e.Reason }

// ResolveCountry turns request input into a supported destination
// country. An explicit country code wins; otherwise the phone number
// is parsed and its region taken. Exactly the destinations in the
// supported set are accepted.
func (s *StorefrontService) ResolveCountry(country, phone string) (string, error) {
	if country != "" {
		c, ok := countries.Lookup(country)
		if !ok {
			return "", fmt.Errorf("%w: %s", utils.ErrInvalidCountry, country)
		}
		return c.Alpha2, nil
	}

	if phone != "" {
		num, err := phonenumbers.Parse(phone, "")
		if err != nil {
			return "", fmt.Errorf("%w: %s", utils.ErrInvalidPhoneNumber, phone)
		}
		if !phonenumbers.IsValidNumber(num) {
			return "", fmt.Errorf("%w: %s", utils.ErrInvalidPhoneNumber, phone)
		}
		region := phonenumbers.GetRegionCodeForNumber(num)
		c, ok := countries.Lookup(region)
		if !ok {
			return "", fmt.Errorf("%w: %s", utils.ErrInvalidCountry, region)
		}
		return c.Alpha2, nil
	}

	return "", fmt.Errorf("%w: country or phone is required", utils.ErrInvalidCountry)
}

// ListProducts prices the organization's catalog for one destination.
func (s *StorefrontService) ListProducts(ctx context.Context, org *models.Organization, isSandbox bool, countryISO string) (*ProductListing, error) {
	items, err := s.catalogSvc.GetCatalog(ctx, countryISO, isSandbox)
	if err != nil {
		return nil, err
	}

	storefront, err := s.storefrontSettings(org.ID)
	if err != nil {
		return nil, err
	}
	rules, err := s.rules(org.ID)
	if err != nil {
		return nil, err
	}
	registry, err := s.discounts(org.ID)
	if err != nil {
		return nil, err
	}
	resaleBySKU, err := s.settingsRepo.ListResaleByOrganization(org.ID)
	if err != nil {
		return nil, err
	}

	src := pricing.SelectSource(registry, storefrontDiscount(storefront))

	res := pricing.Evaluate(pricing.Input{
		Items:       items,
		CountryCode: countryISO,
		Rules:       rules,
		Discounts:   src,
		Storefront:  storefront,
		ResaleBySKU: resaleBySKU,
		Now:         time.Now().UTC(),
	})

	products := res.Products
	if len(products) > s.maxItems {
		products = products[:s.maxItems]
	}

	return &ProductListing{
		CountryISO:   countryISO,
		Products:     products,
		BestDiscount: res.BestDiscount,
		Malformed:    res.Malformed,
	}, nil
}

// PriceProduct prices one product for a destination and quantity. This
// is the only flow where custom per-country pricing applies.
func (s *StorefrontService) PriceProduct(ctx context.Context, org *models.Organization, isSandbox bool, skuCode, countryISO string, quantity int) (*ProductQuote, error) {
	items, err := s.catalogSvc.GetCatalog(ctx, countryISO, isSandbox)
	if err != nil {
		return nil, err
	}

	item, found := findItem(items, skuCode)
	if !found {
		return nil, utils.ErrProductNotFound
	}
	product, ok := pricing.Classify(item)
	if !ok {
		return nil, utils.ErrProductUnavailable
	}

	storefront, err := s.storefrontSettings(org.ID)
	if err != nil {
		return nil, err
	}
	if !pricing.CountryEnabled(storefront, countryISO) {
		return nil, utils.ErrCountryDisabled
	}
	if !pricing.TypeEnabled(storefront, product.IsVariableValue) {
		return nil, utils.ErrProductUnavailable
	}

	resale, err := s.resaleSettings(org.ID, skuCode)
	if err != nil {
		return nil, err
	}

	if check := pricing.ValidateQuantity(quantityLimits(resale, storefront), quantity); !check.Valid {
		return nil, &QuantityError{Reason: check.Reason}
	}

	rules, err := s.rules(org.ID)
	if err != nil {
		return nil, err
	}
	registry, err := s.discounts(org.ID)
	if err != nil {
		return nil, err
	}

	src := pricing.SelectSource(registry, resaleDiscount(resale), storefrontDiscount(storefront))

	priced, applied, available := pricing.EffectivePrice(product, resale, rules, src, countryISO, time.Now().UTC())
	if !available {
		return nil, utils.ErrProductUnavailable
	}

	qty := decimal.NewFromInt(int64(quantity))

	return &ProductQuote{
		CountryISO:      countryISO,
		Product:         priced,
		AppliedDiscount: applied,
		Quantity:        quantity,
		LineTotal:       priced.Pricing.FinalPrice.Mul(qty),
	}, nil
}

func findItem(items []models.CatalogItem, skuCode string) (models.CatalogItem, bool) {
	for _, item := range items {
		if item.SkuCode == skuCode {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}

// storefrontSettings loads the org's storefront settings; a missing
// row means no restrictions and no fallback discount.
func (s *StorefrontService) storefrontSettings(orgID int) (*models.StorefrontSettings, error) {
	settings, err := s.settingsRepo.GetStorefront(orgID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return settings, nil
}

// resaleSettings loads the per-product policy; a missing row means the
// product sells everywhere at catalog cost.
func (s *StorefrontService) resaleSettings(orgID int, skuCode string) (*models.ResaleSettings, error) {
	settings, err := s.settingsRepo.GetResale(orgID, skuCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *StorefrontService) rules(orgID int) ([]models.PricingRule, error) {
	ptrs, err := s.ruleRepo.ListByOrganization(orgID)
	if err != nil {
		return nil, err
	}
	rules := make([]models.PricingRule, len(ptrs))
	for i, r := range ptrs {
		rules[i] = *r
	}
	return rules, nil
}

func (s *StorefrontService) discounts(orgID int) ([]models.Discount, error) {
	ptrs, err := s.discountRepo.ListByOrganization(orgID)
	if err != nil {
		return nil, err
	}
	discounts := make([]models.Discount, len(ptrs))
	for i, d := range ptrs {
		discounts[i] = *d
	}
	return discounts, nil
}

func storefrontDiscount(sf *models.StorefrontSettings) *models.DiscountConfig {
	if sf == nil {
		return nil
	}
	return &sf.Discount
}

func resaleDiscount(rs *models.ResaleSettings) *models.DiscountConfig {
	if rs == nil {
		return nil
	}
	return &rs.Discount
}

// quantityLimits picks the bounds for one product: the resale row when
// present, otherwise the storefront defaults, otherwise unbounded.
func quantityLimits(rs *models.ResaleSettings, sf *models.StorefrontSettings) models.QuantityLimits {
	if rs != nil {
		return rs.Limits()
	}
	if sf != nil {
		return sf.Limits()
	}
	return models.QuantityLimits{}
}
