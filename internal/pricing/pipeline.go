package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

// Input carries everything one catalog evaluation needs. The engine
// reads no clocks and does no I/O; Now is injected so identical inputs
// always price identically.
type Input struct {
	Items       []models.CatalogItem
	CountryCode string
	Rules       []models.PricingRule
	Discounts   Source
	Storefront  *models.StorefrontSettings
	ResaleBySKU map[string]*models.ResaleSettings
	Now         time.Time
}

// Result is one catalog evaluation. BestDiscount is the summary of the
// first discount that applied, for storefront display; Malformed
// counts catalog items that failed classification.
type Result struct {
	Products     []models.PricedProduct
	BestDiscount *models.DiscountSummary
	Malformed    int
}

// Evaluate runs the composition pipeline over a catalog. Per item, in
// fixed order: classify, filter by product type and destination
// country, resolve markup, compose priceBeforeDiscount, resolve
// discount against the unrounded base, clamp the final price at zero.
// Each published amount is rounded half-up to two decimals
// independently; intermediates stay unrounded.
func Evaluate(in Input) Result {
	cc := normalizeCountry(in.CountryCode)

	var res Result
	if !CountryEnabled(in.Storefront, cc) {
		return res
	}
	src := in.Discounts
	if src == nil {
		src = NoDiscount{}
	}

	for _, item := range in.Items {
		p, ok := Classify(item)
		if !ok {
			res.Malformed++
			continue
		}
		if !TypeEnabled(in.Storefront, p.IsVariableValue) {
			continue
		}
		if !IsAvailableInCountry(in.ResaleBySKU[p.SkuCode], cc) {
			continue
		}

		priced, applied := priceFrom(p, p.CostPrice, in.Rules, src, cc, in.Now)
		if applied != nil && res.BestDiscount == nil {
			res.BestDiscount = applied
		}
		res.Products = append(res.Products, priced)
	}
	return res
}

// EffectivePrice prices one configured product through the same
// pipeline. This is the only entry point that consults custom
// per-country pricing: an enabled price for the destination replaces
// the starting price before markup; otherwise the product's default
// sell price (falling back to catalog cost) is used unchanged. ok is
// false when the product is not available in the destination country.
func EffectivePrice(p models.ClassifiedProduct, rs *models.ResaleSettings, rules []models.PricingRule, src Source, country string, now time.Time) (models.PricedProduct, *models.DiscountSummary, bool) {
	cc := normalizeCountry(country)
	if !IsAvailableInCountry(rs, cc) {
		return models.PricedProduct{}, nil, false
	}
	if src == nil {
		src = NoDiscount{}
	}

	start := p.CostPrice
	if rs != nil {
		if !rs.DefaultPrice.IsZero() {
			start = rs.DefaultPrice
		}
		if rs.CustomPricingEnabled {
			if v, ok := rs.PriceByCountry[cc]; ok {
				start = v
			}
		}
	}

	priced, applied := priceFrom(p, start, rules, src, cc, now)
	return priced, applied, true
}

// priceFrom composes the breakdown for one product from a starting
// price. Discount eligibility and amounts work on the unrounded
// post-markup base.
func priceFrom(p models.ClassifiedProduct, start decimal.Decimal, rules []models.PricingRule, src Source, cc string, now time.Time) (models.PricedProduct, *models.DiscountSummary) {
	rule := ResolveMarkupRule(rules, cc)
	markup := MarkupAmount(rule, start)
	before := start.Add(markup)

	amount := decimal.Zero
	var applied *models.DiscountSummary
	if app := src.Resolve(before, cc, now); app != nil {
		amount = app.Amount
		summary := app.Summary
		applied = &summary
	}

	final := before.Sub(amount)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return models.PricedProduct{
		SkuCode:         p.SkuCode,
		Name:            p.Name,
		OperatorCode:    p.OperatorCode,
		CountryISO:      p.CountryISO,
		BenefitType:     p.BenefitType,
		BenefitAmount:   p.BenefitAmount,
		BenefitUnit:     p.BenefitUnit,
		IsVariableValue: p.IsVariableValue,
		MinAmount:       p.MinAmount,
		MaxAmount:       p.MaxAmount,
		ValidityPeriod:  p.ValidityPeriod,
		Pricing: models.PriceBreakdown{
			CostPrice:           roundMoney(start),
			Markup:              roundMoney(markup),
			PriceBeforeDiscount: roundMoney(before),
			Discount:            roundMoney(amount),
			FinalPrice:          roundMoney(final),
			DiscountApplied:     applied != nil,
			CurrencyCode:        p.CurrencyCode,
		},
	}, applied
}
