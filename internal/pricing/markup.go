package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

// ResolveMarkupRule picks the winning markup rule for a destination.
// Only active rules compete; higher priority wins with stored order
// kept between equal priorities; the first rule whose country scope
// matches is the answer. No match returns nil, which callers treat as
// zero markup.
func ResolveMarkupRule(rules []models.PricingRule, country string) *models.PricingRule {
	cc := normalizeCountry(country)

	ordered := make([]models.PricingRule, 0, len(rules))
	for _, r := range rules {
		if r.IsActive {
			ordered = append(ordered, r)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	for i := range ordered {
		r := &ordered[i]
		if len(r.Countries) == 0 || countryInList(r.Countries, cc) {
			return r
		}
	}
	return nil
}

// MarkupAmount computes the unrounded markup for a starting price. A
// nil rule yields zero markup.
func MarkupAmount(rule *models.PricingRule, price decimal.Decimal) decimal.Decimal {
	if rule == nil {
		return decimal.Zero
	}
	switch rule.MarkupType {
	case models.MarkupPercentage:
		return percentOf(price, rule.MarkupValue)
	case models.MarkupFixed:
		return rule.MarkupValue
	}
	return decimal.Zero
}
