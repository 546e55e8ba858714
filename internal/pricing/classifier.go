package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

// planBenefitTags mark a catalog item as a plan even when it carries a
// send-value range. Matching is case-insensitive.
var planBenefitTags = map[string]bool{
	"data":  true,
	"voice": true,
	"sms":   true,
}

// Classify normalizes one raw catalog item into a ClassifiedProduct.
// ok is false for malformed items carrying neither a fixed price nor a
// complete value range; callers skip and count those.
//
// An item is a variable-value top-up only when it has a min/max range
// and nothing that marks it as a plan: no fixed price, no typed benefit
// amounts, no validity period, no plan benefit tag. Anything ambiguous
// stays a fixed-value plan.
func Classify(item models.CatalogItem) (models.ClassifiedProduct, bool) {
	hasFixedPrice := item.Price != nil
	hasMinMax := item.MinAmount != nil && item.MaxAmount != nil
	if !hasFixedPrice && !hasMinMax {
		return models.ClassifiedProduct{}, false
	}

	hasTypedBenefits := item.AirtimeAmount != nil || item.DataAmountMB != nil ||
		item.VoiceMinutes != nil || item.SMSCount != nil
	hasValidity := item.ValidityPeriod != ""

	benefitsIndicatePlan := false
	for _, tag := range item.Benefits {
		if planBenefitTags[strings.ToLower(strings.TrimSpace(tag))] {
			benefitsIndicatePlan = true
			break
		}
	}

	variable := hasMinMax && !hasFixedPrice && !hasTypedBenefits &&
		!hasValidity && !benefitsIndicatePlan

	p := models.ClassifiedProduct{
		SkuCode:         item.SkuCode,
		Name:            item.Name,
		OperatorCode:    item.OperatorCode,
		CountryISO:      normalizeCountry(item.CountryISO),
		CurrencyCode:    item.CurrencyCode,
		IsVariableValue: variable,
		MinAmount:       item.MinAmount,
		MaxAmount:       item.MaxAmount,
		ValidityPeriod:  item.ValidityPeriod,
	}

	// Cost price prefers the fixed-price shape; range items start from
	// the minimum send value.
	if hasFixedPrice {
		p.CostPrice = *item.Price
	} else {
		p.CostPrice = *item.MinAmount
	}

	p.BenefitType, p.BenefitAmount, p.BenefitUnit = benefitOf(item, p.CostPrice)
	return p, true
}

// benefitOf picks the most specific typed benefit. Data wins over
// voice, SMS and airtime when an item bundles several. Items with no
// typed benefit are plain top-ups whose benefit is the monetary value
// itself.
func benefitOf(item models.CatalogItem, cost decimal.Decimal) (models.BenefitType, decimal.Decimal, string) {
	switch {
	case item.DataAmountMB != nil:
		return models.BenefitData, *item.DataAmountMB, "MB"
	case item.VoiceMinutes != nil:
		return models.BenefitVoice, *item.VoiceMinutes, "min"
	case item.SMSCount != nil:
		return models.BenefitSMS, *item.SMSCount, "msg"
	case item.AirtimeAmount != nil:
		return models.BenefitAirtime, *item.AirtimeAmount, item.CurrencyCode
	}
	return models.BenefitAirtime, cost, item.CurrencyCode
}
