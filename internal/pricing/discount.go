package pricing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

// Application is a resolved discount: the unrounded amount to subtract
// and the summary shown to shoppers.
type Application struct {
	Amount  decimal.Decimal
	Summary models.DiscountSummary
}

// Source resolves the discount for a purchase base amount. The two
// implementations are mutually exclusive paths; the caller picks one
// per flow and the pipeline stays agnostic about which it got.
type Source interface {
	Resolve(base decimal.Decimal, country string, now time.Time) *Application
}

// SelectSource picks the discount path for a flow: the registry
// whenever any records exist for the organization (even if none end up
// eligible), otherwise the first enabled fallback config. The paths
// never mix.
func SelectSource(registry []models.Discount, fallbacks ...*models.DiscountConfig) Source {
	if len(registry) > 0 {
		return RegistrySource{Discounts: registry}
	}
	for _, c := range fallbacks {
		if c != nil && c.Enabled {
			return SettingsSource{Config: c}
		}
	}
	return NoDiscount{}
}

// RegistrySource serves stored discount records. Valid records are
// ranked by value descending; the first whose country scope covers the
// destination is chosen, then gated on its minimum purchase amount.
// There is no fall-through past the chosen record.
type RegistrySource struct {
	Discounts []models.Discount
}

// Resolve implements Source.
func (s RegistrySource) Resolve(base decimal.Decimal, country string, now time.Time) *Application {
	cc := normalizeCountry(country)

	valid := make([]models.Discount, 0, len(s.Discounts))
	for _, d := range s.Discounts {
		if d.IsValid(now) {
			valid = append(valid, d)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Value.GreaterThan(valid[j].Value)
	})

	var chosen *models.Discount
	for i := range valid {
		d := &valid[i]
		if len(d.ApplicableCountries) == 0 || countryInList(d.ApplicableCountries, cc) {
			chosen = d
			break
		}
	}
	if chosen == nil {
		return nil
	}
	if chosen.MinPurchaseAmount != nil && base.LessThan(*chosen.MinPurchaseAmount) {
		return nil
	}

	amount := discountAmount(chosen.Type, chosen.Value, base)
	if chosen.MaxDiscountAmount != nil && amount.GreaterThan(*chosen.MaxDiscountAmount) {
		amount = *chosen.MaxDiscountAmount
	}

	return &Application{
		Amount: amount,
		Summary: models.DiscountSummary{
			ID:                chosen.ID,
			Name:              chosen.Name,
			Type:              chosen.Type,
			Value:             chosen.Value,
			MinPurchaseAmount: chosen.MinPurchaseAmount,
			MaxDiscountAmount: chosen.MaxDiscountAmount,
		},
	}
}

// SettingsSource serves the discount config embedded in resale or
// storefront settings. It knows nothing about usage budgets or amount
// caps; those exist only on registry records.
type SettingsSource struct {
	Config *models.DiscountConfig
}

// Resolve implements Source.
func (s SettingsSource) Resolve(base decimal.Decimal, country string, now time.Time) *Application {
	c := s.Config
	if c == nil || !c.Enabled {
		return nil
	}
	if c.StartDate != nil && now.Before(*c.StartDate) {
		return nil
	}
	if c.EndDate != nil && now.After(*c.EndDate) {
		return nil
	}
	if len(c.ApplicableCountries) > 0 && !countryInList(c.ApplicableCountries, normalizeCountry(country)) {
		return nil
	}
	if c.MinPurchaseAmount != nil && base.LessThan(*c.MinPurchaseAmount) {
		return nil
	}

	return &Application{
		Amount: discountAmount(c.Type, c.DiscountValue, base),
		Summary: models.DiscountSummary{
			Name:              c.Name,
			Type:              c.Type,
			Value:             c.DiscountValue,
			MinPurchaseAmount: c.MinPurchaseAmount,
		},
	}
}

// NoDiscount is the Source for flows with no discount configured.
type NoDiscount struct{}

// Resolve implements Source.
func (NoDiscount) Resolve(decimal.Decimal, string, time.Time) *Application { return nil }

// discountAmount computes the unrounded discount for a base price.
func discountAmount(t models.DiscountType, value, base decimal.Decimal) decimal.Decimal {
	if t == models.DiscountPercentage {
		return percentOf(base, value)
	}
	return value
}
