package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/TopsellHQ/topsell_api/internal/countries"
	"github.com/TopsellHQ/topsell_api/internal/models"
	"github.com/TopsellHQ/topsell_api/internal/repository"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

// PricingAdminService manages the operator-facing pricing surface:
// markup rules, discount records, storefront settings and per-product
// resale settings. All writes normalize country scopes to upper-case
// alpha-2 and reject codes outside the supported set.
type PricingAdminService struct {
	ruleRepo     *repository.PricingRuleRepository
	discountRepo *repository.DiscountRepository
	settingsRepo *repository.SettingsRepository
}

// NewPricingAdminService constructs a PricingAdminService.
func NewPricingAdminService(
	ruleRepo *repository.PricingRuleRepository,
	discountRepo *repository.DiscountRepository,
	settingsRepo *repository.SettingsRepository,
) *PricingAdminService {
	return &PricingAdminService{
		ruleRepo:     ruleRepo,
		discountRepo: discountRepo,
		settingsRepo: settingsRepo,
	}
}

// normalizeCountryList upper-cases and validates a country scope list.
// An empty list is valid and means "all countries".
func normalizeCountryList(codes []string) ([]string, error) {
	if len(codes) == 0 {
		return codes, nil
	}
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		cc := strings.ToUpper(strings.TrimSpace(code))
		if !countries.IsSupported(cc) {
			return nil, fmt.Errorf("%w: %s", utils.ErrInvalidCountry, code)
		}
		out = append(out, cc)
	}
	return out, nil
}

// ---- Pricing rules ----

// PricingRuleRequest represents the request to create or update a markup rule.
type PricingRuleRequest struct {
	Name        string          `json:"name" binding:"required"`
	Priority    int             `json:"priority"`
	IsActive    *bool           `json:"isActive"`
	Countries   []string        `json:"countries"`
	MarkupType  string          `json:"markupType" binding:"required"`
	MarkupValue decimal.Decimal `json:"markupValue"`
}

func (req *PricingRuleRequest) validate() (models.MarkupType, []string, error) {
	mt := models.MarkupType(req.MarkupType)
	if mt != models.MarkupPercentage && mt != models.MarkupFixed {
		return "", nil, fmt.Errorf("invalid markupType: must be 'percentage' or 'fixed'")
	}
	if req.MarkupValue.IsNegative() {
		return "", nil, fmt.Errorf("markupValue must not be negative")
	}
	ccs, err := normalizeCountryList(req.Countries)
	if err != nil {
		return "", nil, err
	}
	return mt, ccs, nil
}

// ListRules retrieves an organization's markup rules in resolver order.
func (s *PricingAdminService) ListRules(orgID int) ([]*models.PricingRule, error) {
	return s.ruleRepo.ListByOrganization(orgID)
}

// GetRule retrieves one markup rule.
func (s *PricingAdminService) GetRule(orgID, id int) (*models.PricingRule, error) {
	rule, err := s.ruleRepo.GetByID(orgID, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrRuleNotFound
		}
		return nil, err
	}
	return rule, nil
}

// CreateRule creates a markup rule for an organization.
func (s *PricingAdminService) CreateRule(orgID int, req *PricingRuleRequest) (*models.PricingRule, error) {
	mt, ccs, err := req.validate()
	if err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	rule := &models.PricingRule{
		OrganizationID: orgID,
		Name:           req.Name,
		Priority:       req.Priority,
		IsActive:       active,
		Countries:      ccs,
		MarkupType:     mt,
		MarkupValue:    req.MarkupValue,
	}

	if err := s.ruleRepo.Create(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// UpdateRule replaces a markup rule's fields.
func (s *PricingAdminService) UpdateRule(orgID, id int, req *PricingRuleRequest) (*models.PricingRule, error) {
	rule, err := s.GetRule(orgID, id)
	if err != nil {
		return nil, err
	}

	mt, ccs, err := req.validate()
	if err != nil {
		return nil, err
	}

	rule.Name = req.Name
	rule.Priority = req.Priority
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	rule.Countries = ccs
	rule.MarkupType = mt
	rule.MarkupValue = req.MarkupValue

	if err := s.ruleRepo.Update(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// DeleteRule removes a markup rule.
func (s *PricingAdminService) DeleteRule(orgID, id int) error {
	if _, err := s.GetRule(orgID, id); err != nil {
		return err
	}
	return s.ruleRepo.Delete(orgID, id)
}

// ---- Discounts ----

// DiscountRequest represents the request to create or update a discount.
type DiscountRequest struct {
	Name                string           `json:"name" binding:"required"`
	Type                string           `json:"type" binding:"required"`
	Value               decimal.Decimal  `json:"value"`
	IsActive            *bool            `json:"isActive"`
	StartDate           *time.Time       `json:"startDate"`
	EndDate             *time.Time       `json:"endDate"`
	MinPurchaseAmount   *decimal.Decimal `json:"minPurchaseAmount"`
	MaxDiscountAmount   *decimal.Decimal `json:"maxDiscountAmount"`
	ApplicableCountries []string         `json:"applicableCountries"`
	UsageLimit          *int             `json:"usageLimit"`
}

func (req *DiscountRequest) validate() (models.DiscountType, []string, error) {
	dt := models.DiscountType(req.Type)
	if dt != models.DiscountPercentage && dt != models.DiscountFixed {
		return "", nil, fmt.Errorf("invalid type: must be 'percentage' or 'fixed'")
	}
	if req.Value.IsNegative() {
		return "", nil, fmt.Errorf("value must not be negative")
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return "", nil, fmt.Errorf("endDate must not precede startDate")
	}
	if req.MinPurchaseAmount != nil && req.MinPurchaseAmount.IsNegative() {
		return "", nil, fmt.Errorf("minPurchaseAmount must not be negative")
	}
	if req.MaxDiscountAmount != nil && req.MaxDiscountAmount.IsNegative() {
		return "", nil, fmt.Errorf("maxDiscountAmount must not be negative")
	}
	if req.UsageLimit != nil && *req.UsageLimit < 0 {
		return "", nil, fmt.Errorf("usageLimit must not be negative")
	}
	ccs, err := normalizeCountryList(req.ApplicableCountries)
	if err != nil {
		return "", nil, err
	}
	return dt, ccs, nil
}

// ListDiscounts retrieves all discount records for an organization.
func (s *PricingAdminService) ListDiscounts(orgID int) ([]*models.Discount, error) {
	return s.discountRepo.ListByOrganization(orgID)
}

// GetDiscount retrieves one discount record.
func (s *PricingAdminService) GetDiscount(orgID, id int) (*models.Discount, error) {
	d, err := s.discountRepo.GetByID(orgID, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrDiscountNotFound
		}
		return nil, err
	}
	return d, nil
}

// CreateDiscount creates a discount record for an organization.
func (s *PricingAdminService) CreateDiscount(orgID int, req *DiscountRequest) (*models.Discount, error) {
	dt, ccs, err := req.validate()
	if err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	d := &models.Discount{
		OrganizationID:      orgID,
		Name:                req.Name,
		Type:                dt,
		Value:               req.Value,
		IsActive:            active,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		MinPurchaseAmount:   req.MinPurchaseAmount,
		MaxDiscountAmount:   req.MaxDiscountAmount,
		ApplicableCountries: ccs,
		UsageLimit:          req.UsageLimit,
	}

	if err := s.discountRepo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateDiscount replaces a discount's fields. The usage counter is
// untouched; only redemptions move it.
func (s *PricingAdminService) UpdateDiscount(orgID, id int, req *DiscountRequest) (*models.Discount, error) {
	d, err := s.GetDiscount(orgID, id)
	if err != nil {
		return nil, err
	}

	dt, ccs, err := req.validate()
	if err != nil {
		return nil, err
	}

	d.Name = req.Name
	d.Type = dt
	d.Value = req.Value
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}
	d.StartDate = req.StartDate
	d.EndDate = req.EndDate
	d.MinPurchaseAmount = req.MinPurchaseAmount
	d.MaxDiscountAmount = req.MaxDiscountAmount
	d.ApplicableCountries = ccs
	d.UsageLimit = req.UsageLimit

	if err := s.discountRepo.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}

// DeleteDiscount removes a discount record.
func (s *PricingAdminService) DeleteDiscount(orgID, id int) error {
	if _, err := s.GetDiscount(orgID, id); err != nil {
		return err
	}
	return s.discountRepo.Delete(orgID, id)
}

// RedeemDiscount records one redemption against a discount and returns
// the record with its updated usage snapshot. Pricing flows never call
// this; it is the bookkeeping surface for completed purchases.
func (s *PricingAdminService) RedeemDiscount(orgID, id int) (*models.Discount, error) {
	d, err := s.GetDiscount(orgID, id)
	if err != nil {
		return nil, err
	}

	count, err := s.discountRepo.IncrementUsage(orgID, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrUsageExhausted
		}
		return nil, err
	}

	d.UsageCount = count
	return d, nil
}

// ---- Settings ----

// StorefrontSettingsRequest represents the request to replace an
// organization's storefront settings.
type StorefrontSettingsRequest struct {
	PlansEnabled        *bool                 `json:"plansEnabled"`
	TopupsEnabled       *bool                 `json:"topupsEnabled"`
	AllCountriesEnabled *bool                 `json:"allCountriesEnabled"`
	EnabledCountries    []string              `json:"enabledCountries"`
	Discount            models.DiscountConfig `json:"discount"`
	MinQuantity         int                   `json:"minQuantity"`
	MaxQuantity         int                   `json:"maxQuantity"`
}

// ResaleSettingsRequest represents the request to replace the resale
// settings for one organization+SKU.
type ResaleSettingsRequest struct {
	DefaultPrice         decimal.Decimal       `json:"defaultPrice"`
	AllowedCountries     []string              `json:"allowedCountries"`
	BlockedCountries     []string              `json:"blockedCountries"`
	CustomPricingEnabled bool                  `json:"customPricingEnabled"`
	PriceByCountry       models.PriceMap       `json:"priceByCountry"`
	Discount             models.DiscountConfig `json:"discount"`
	MinQuantity          int                   `json:"minQuantity"`
	MaxQuantity          int                   `json:"maxQuantity"`
}

func validateQuantityBounds(minQty, maxQty int) error {
	if minQty < 0 || maxQty < 0 {
		return fmt.Errorf("quantity limits must not be negative")
	}
	if minQty > 0 && maxQty > 0 && minQty > maxQty {
		return fmt.Errorf("minQuantity must not exceed maxQuantity")
	}
	return nil
}

func validateDiscountConfig(c *models.DiscountConfig) error {
	if !c.Enabled {
		return nil
	}
	if c.Type != models.DiscountPercentage && c.Type != models.DiscountFixed {
		return fmt.Errorf("discount.type must be 'percentage' or 'fixed'")
	}
	if c.DiscountValue.IsNegative() {
		return fmt.Errorf("discount.value must not be negative")
	}
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return fmt.Errorf("discount.endDate must not precede discount.startDate")
	}
	ccs, err := normalizeCountryList(c.ApplicableCountries)
	if err != nil {
		return err
	}
	c.ApplicableCountries = ccs
	return nil
}

// defaultStorefrontSettings is what an organization gets before its
// first save: everything listed, every country enabled, no discount,
// unbounded quantities.
func defaultStorefrontSettings(orgID int) *models.StorefrontSettings {
	return &models.StorefrontSettings{
		OrganizationID:      orgID,
		PlansEnabled:        true,
		TopupsEnabled:       true,
		AllCountriesEnabled: true,
	}
}

// GetStorefrontSettings fetches an organization's storefront settings,
// falling back to defaults when none were saved yet.
func (s *PricingAdminService) GetStorefrontSettings(orgID int) (*models.StorefrontSettings, error) {
	settings, err := s.settingsRepo.GetStorefront(orgID)
	if err != nil {
		if err == sql.ErrNoRows {
			return defaultStorefrontSettings(orgID), nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdateStorefrontSettings replaces an organization's storefront
// settings, creating the row on first save.
func (s *PricingAdminService) UpdateStorefrontSettings(orgID int, req *StorefrontSettingsRequest) (*models.StorefrontSettings, error) {
	if err := validateQuantityBounds(req.MinQuantity, req.MaxQuantity); err != nil {
		return nil, err
	}
	if err := validateDiscountConfig(&req.Discount); err != nil {
		return nil, err
	}
	enabled, err := normalizeCountryList(req.EnabledCountries)
	if err != nil {
		return nil, err
	}

	settings := defaultStorefrontSettings(orgID)
	if req.PlansEnabled != nil {
		settings.PlansEnabled = *req.PlansEnabled
	}
	if req.TopupsEnabled != nil {
		settings.TopupsEnabled = *req.TopupsEnabled
	}
	if req.AllCountriesEnabled != nil {
		settings.AllCountriesEnabled = *req.AllCountriesEnabled
	}
	settings.EnabledCountries = enabled
	settings.Discount = req.Discount
	settings.MinQuantity = req.MinQuantity
	settings.MaxQuantity = req.MaxQuantity

	if err := s.settingsRepo.UpsertStorefront(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// GetResaleSettings fetches the resale settings for one SKU. A missing
// row maps to ErrSettingsNotFound so handlers can 404.
func (s *PricingAdminService) GetResaleSettings(orgID int, skuCode string) (*models.ResaleSettings, error) {
	settings, err := s.settingsRepo.GetResale(orgID, skuCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrSettingsNotFound
		}
		return nil, err
	}
	return settings, nil
}

// UpdateResaleSettings replaces the resale settings for one SKU,
// creating the row on first save. Custom price map keys are normalized
// and validated like every other country scope.
func (s *PricingAdminService) UpdateResaleSettings(orgID int, skuCode string, req *ResaleSettingsRequest) (*models.ResaleSettings, error) {
	if err := validateQuantityBounds(req.MinQuantity, req.MaxQuantity); err != nil {
		return nil, err
	}
	if err := validateDiscountConfig(&req.Discount); err != nil {
		return nil, err
	}
	if req.DefaultPrice.IsNegative() {
		return nil, fmt.Errorf("defaultPrice must not be negative")
	}

	allowed, err := normalizeCountryList(req.AllowedCountries)
	if err != nil {
		return nil, err
	}
	blocked, err := normalizeCountryList(req.BlockedCountries)
	if err != nil {
		return nil, err
	}

	priceByCountry := models.PriceMap{}
	for code, price := range req.PriceByCountry {
		cc := strings.ToUpper(strings.TrimSpace(code))
		if !countries.IsSupported(cc) {
			return nil, fmt.Errorf("%w: %s", utils.ErrInvalidCountry, code)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("priceByCountry[%s] must not be negative", cc)
		}
		priceByCountry[cc] = price
	}

	settings := &models.ResaleSettings{
		OrganizationID:       orgID,
		SkuCode:              skuCode,
		DefaultPrice:         req.DefaultPrice,
		AllowedCountries:     allowed,
		BlockedCountries:     blocked,
		CustomPricingEnabled: req.CustomPricingEnabled,
		PriceByCountry:       priceByCountry,
		Discount:             req.Discount,
		MinQuantity:          req.MinQuantity,
		MaxQuantity:          req.MaxQuantity,
	}

	if err := s.settingsRepo.UpsertResale(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// DeleteResaleSettings removes the resale settings row for one SKU.
func (s *PricingAdminService) DeleteResaleSettings(orgID int, skuCode string) error {
	if _, err := s.GetResaleSettings(orgID, skuCode); err != nil {
		return err
	}
	return s.settingsRepo.DeleteResale(orgID, skuCode)
}
