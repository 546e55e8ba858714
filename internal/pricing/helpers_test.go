package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intp(v int) *int { return &v }

func timep(t time.Time) *time.Time { return &t }

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedItem(sku, country, currency, price string) models.CatalogItem {
	return models.CatalogItem{
		SkuCode:      sku,
		Name:         sku,
		OperatorCode: "OP1",
		CountryISO:   country,
		CurrencyCode: currency,
		Price:        decp(price),
	}
}

func rangeItem(sku, country, currency, min, max string) models.CatalogItem {
	return models.CatalogItem{
		SkuCode:      sku,
		Name:         sku,
		OperatorCode: "OP1",
		CountryISO:   country,
		CurrencyCode: currency,
		MinAmount:    decp(min),
		MaxAmount:    decp(max),
	}
}

func pctRule(id, priority int, value string, countries ...string) models.PricingRule {
	return models.PricingRule{
		ID:             id,
		OrganizationID: 1,
		Name:           "rule",
		Priority:       priority,
		IsActive:       true,
		Countries:      countries,
		MarkupType:     models.MarkupPercentage,
		MarkupValue:    dec(value),
	}
}

func pctDiscount(id int, value string, countries ...string) models.Discount {
	return models.Discount{
		ID:                  id,
		OrganizationID:      1,
		Name:                "promo",
		Type:                models.DiscountPercentage,
		Value:               dec(value),
		IsActive:            true,
		ApplicableCountries: countries,
	}
}
