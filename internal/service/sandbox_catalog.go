package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TopsellHQ/topsell_api/internal/countries"
	"github.com/TopsellHQ/topsell_api/internal/models"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

// SandboxCatalogProvider serves a deterministic fixture catalog so
// sandbox keys can exercise the full pricing pipeline without touching
// the live aggregator. Every supported country gets the same product
// set, SKU-namespaced per country.
type SandboxCatalogProvider struct{}

// NewSandboxCatalogProvider creates a new SandboxCatalogProvider.
func NewSandboxCatalogProvider() *SandboxCatalogProvider {
	return &SandboxCatalogProvider{}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// FetchCatalog returns the fixture catalog for a destination country.
func (p *SandboxCatalogProvider) FetchCatalog(_ context.Context, alpha2 string) ([]models.CatalogItem, error) {
	c, ok := countries.Lookup(alpha2)
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrInvalidCountry, alpha2)
	}

	cc := c.Alpha2
	sku := func(suffix string) string {
		return fmt.Sprintf("sb-%s-%s", strings.ToLower(cc), suffix)
	}

	return []models.CatalogItem{
		{
			SkuCode:      sku("topup-range"),
			Name:         "Sandbox Flexible Top-Up",
			OperatorCode: "sb1",
			OperatorName: "Sandbox Mobile",
			CountryISO:   cc,
			CurrencyCode: "USD",
			MinAmount:    dec("1"),
			MaxAmount:    dec("150"),
		},
		{
			SkuCode:       sku("airtime-5"),
			Name:          "Sandbox Airtime 5",
			OperatorCode:  "sb1",
			OperatorName:  "Sandbox Mobile",
			CountryISO:    cc,
			CurrencyCode:  "USD",
			Price:         dec("5"),
			AirtimeAmount: dec("5"),
			Benefits:      []string{"credits"},
		},
		{
			SkuCode:       sku("airtime-10"),
			Name:          "Sandbox Airtime 10",
			OperatorCode:  "sb1",
			OperatorName:  "Sandbox Mobile",
			CountryISO:    cc,
			CurrencyCode:  "USD",
			Price:         dec("10"),
			AirtimeAmount: dec("10"),
			Benefits:      []string{"credits"},
		},
		{
			SkuCode:        sku("data-1gb-30d"),
			Name:           "Sandbox Data 1GB 30 Days",
			OperatorCode:   "sb1",
			OperatorName:   "Sandbox Mobile",
			CountryISO:     cc,
			CurrencyCode:   "USD",
			Price:          dec("8.50"),
			DataAmountMB:   dec("1024"),
			Benefits:       []string{"data"},
			ValidityPeriod: "30 days",
		},
		{
			SkuCode:        sku("combo-30d"),
			Name:           "Sandbox Combo 2GB + 100min + 50 SMS",
			OperatorCode:   "sb2",
			OperatorName:   "Sandbox Telecom",
			CountryISO:     cc,
			CurrencyCode:   "USD",
			Price:          dec("14.99"),
			DataAmountMB:   dec("2048"),
			VoiceMinutes:   dec("100"),
			SMSCount:       dec("50"),
			Benefits:       []string{"data", "voice", "sms"},
			ValidityPeriod: "30 days",
		},
	}, nil
}
