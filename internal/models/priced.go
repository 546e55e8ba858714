package models

import "github.com/shopspring/decimal"

// PriceBreakdown is the published pricing detail for one product.
// Every amount is rounded half-up to two decimal places; currency is
// passed through from the catalog unchanged.
type PriceBreakdown struct {
	CostPrice           decimal.Decimal `json:"costPrice"`
	Markup              decimal.Decimal `json:"markup"`
	PriceBeforeDiscount decimal.Decimal `json:"priceBeforeDiscount"`
	Discount            decimal.Decimal `json:"discount"`
	FinalPrice          decimal.Decimal `json:"finalPrice"`
	DiscountApplied     bool            `json:"discountApplied"`
	CurrencyCode        string          `json:"currency"`
}

// PricedProduct is a storefront-ready product with its breakdown.
type PricedProduct struct {
	SkuCode         string           `json:"skuCode"`
	Name            string           `json:"name"`
	OperatorCode    string           `json:"operatorCode"`
	CountryISO      string           `json:"countryIso"`
	BenefitType     BenefitType      `json:"benefitType"`
	BenefitAmount   decimal.Decimal  `json:"benefitAmount"`
	BenefitUnit     string           `json:"benefitUnit"`
	IsVariableValue bool             `json:"isVariableValue"`
	MinAmount       *decimal.Decimal `json:"minAmount,omitempty"`
	MaxAmount       *decimal.Decimal `json:"maxAmount,omitempty"`
	ValidityPeriod  string           `json:"validityPeriod,omitempty"`
	Pricing         PriceBreakdown   `json:"pricing"`
}

// DiscountSummary describes the discount a listing ended up using,
// for display purposes. ID is zero for settings-based discounts.
type DiscountSummary struct {
	ID                int              `json:"id,omitempty"`
	Name              string           `json:"name"`
	Type              DiscountType     `json:"type"`
	Value             decimal.Decimal  `json:"value"`
	MinPurchaseAmount *decimal.Decimal `json:"minPurchaseAmount,omitempty"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount,omitempty"`
}
