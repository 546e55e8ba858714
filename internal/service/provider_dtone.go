package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TopsellHQ/topsell_api/internal/countries"
	"github.com/TopsellHQ/topsell_api/internal/models"
	"github.com/TopsellHQ/topsell_api/internal/utils"
	"github.com/TopsellHQ/topsell_api/pkg/dtone"
)

// CatalogProvider is the upstream seam: given a destination country it
// returns raw catalog items for the pricing pipeline. Implementations
// exist for the live aggregator and for the sandbox fixture catalog.
type CatalogProvider interface {
	FetchCatalog(ctx context.Context, alpha2 string) ([]models.CatalogItem, error)
}

// DTOneCatalogProvider wraps the DT One DVS client to implement
// CatalogProvider, translating DVS products into the two catalog item
// shapes the classifier understands.
type DTOneCatalogProvider struct {
	client   *dtone.Client
	pageSize int
}

// NewDTOneCatalogProvider creates a new DTOneCatalogProvider.
func NewDTOneCatalogProvider(client *dtone.Client, pageSize int) *DTOneCatalogProvider {
	return &DTOneCatalogProvider{client: client, pageSize: pageSize}
}

// FetchCatalog fetches every product sold into the given destination.
// The storefront speaks alpha-2; DVS addresses countries by alpha-3.
func (p *DTOneCatalogProvider) FetchCatalog(ctx context.Context, alpha2 string) ([]models.CatalogItem, error) {
	alpha3, ok := countries.Alpha3(alpha2)
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrInvalidCountry, alpha2)
	}

	products, err := p.client.GetProducts(ctx, alpha3, p.pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrCatalogUnavailable, err)
	}

	items := make([]models.CatalogItem, 0, len(products))
	for _, prod := range products {
		items = append(items, mapDTOneProduct(prod, alpha2))
	}
	return items, nil
}

// mapDTOneProduct translates one DVS product. Fixed-value recharges
// carry the wholesale cost as the item price plus whatever typed
// benefits DVS reports; ranged recharges carry the source-value bounds
// instead. Items DVS returns without usable amounts keep their nil
// fields and fall out later as malformed.
func mapDTOneProduct(prod dtone.Product, fallbackAlpha2 string) models.CatalogItem {
	item := models.CatalogItem{
		SkuCode:      strconv.FormatInt(prod.ID, 10),
		Name:         prod.Name,
		OperatorCode: strconv.FormatInt(prod.Operator.ID, 10),
		OperatorName: prod.Operator.Name,
		CountryISO:   fallbackAlpha2,
	}

	if c, ok := countries.FromAlpha3(prod.Operator.Country.ISOCode); ok {
		item.CountryISO = c.Alpha2
	}

	switch prod.Type {
	case dtone.ProductRangedValueRecharge:
		item.MinAmount = prod.Source.MinimumAmount
		item.MaxAmount = prod.Source.MaximumAmount
		item.CurrencyCode = prod.Source.Unit
	default:
		if prod.Prices.Wholesale.Amount != nil {
			item.Price = prod.Prices.Wholesale.Amount
			item.CurrencyCode = prod.Prices.Wholesale.Unit
		} else if prod.Source.Amount != nil {
			item.Price = prod.Source.Amount
			item.CurrencyCode = prod.Source.Unit
		}
	}

	for _, b := range prod.Benefits {
		amount := b.Amount.Base
		switch b.Type {
		case dtone.BenefitData:
			mb := dataAmountMB(amount, b.Unit)
			item.DataAmountMB = &mb
			item.Benefits = append(item.Benefits, "data")
		case dtone.BenefitTalktime:
			min := voiceMinutes(amount, b.Unit)
			item.VoiceMinutes = &min
			item.Benefits = append(item.Benefits, "voice")
		case dtone.BenefitSMS:
			item.SMSCount = &amount
			item.Benefits = append(item.Benefits, "sms")
		case dtone.BenefitCredits:
			item.AirtimeAmount = &amount
			item.Benefits = append(item.Benefits, "credits")
		}
	}

	if prod.Validity != nil {
		item.ValidityPeriod = formatValidity(prod.Validity)
	}

	return item
}

var gib = decimal.NewFromInt(1024)

// dataAmountMB normalizes a DVS data allowance to megabytes.
func dataAmountMB(amount decimal.Decimal, unit string) decimal.Decimal {
	if strings.EqualFold(unit, "GB") {
		return amount.Mul(gib)
	}
	return amount
}

var secondsPerMinute = decimal.NewFromInt(60)

// voiceMinutes normalizes a DVS talktime allowance to minutes.
func voiceMinutes(amount decimal.Decimal, unit string) decimal.Decimal {
	if strings.EqualFold(unit, "SECONDS") || strings.EqualFold(unit, "SECOND") {
		return amount.Div(secondsPerMinute)
	}
	return amount
}

// formatValidity renders a DVS validity block as a display string,
// e.g. "30 days".
func formatValidity(v *dtone.Validity) string {
	unit := strings.ToLower(v.Unit)
	if v.Quantity != 1 && !strings.HasSuffix(unit, "s") {
		unit += "s"
	}
	return fmt.Sprintf("%d %s", v.Quantity, unit)
}
