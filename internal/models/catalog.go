package models

import "github.com/shopspring/decimal"

// BenefitType classifies what a product delivers to the beneficiary.
type BenefitType string

const (
	BenefitAirtime BenefitType = "airtime"
	BenefitData    BenefitType = "data"
	BenefitVoice   BenefitType = "voice"
	BenefitSMS     BenefitType = "sms"
)

// CatalogItem is a raw upstream catalog entry as returned by the
// provider adapter. Items arrive in one of two shapes: a fixed Price,
// usually with typed benefit amounts, or a MinAmount/MaxAmount
// send-value range with a Benefits tag list and optional validity.
// Items carrying neither shape are malformed and get skipped.
type CatalogItem struct {
	SkuCode        string           `json:"skuCode"`
	Name           string           `json:"name"`
	OperatorCode   string           `json:"operatorCode"`
	OperatorName   string           `json:"operatorName,omitempty"`
	CountryISO     string           `json:"countryIso"`
	CurrencyCode   string           `json:"currency"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	AirtimeAmount  *decimal.Decimal `json:"airtimeAmount,omitempty"`
	DataAmountMB   *decimal.Decimal `json:"dataAmountMb,omitempty"`
	VoiceMinutes   *decimal.Decimal `json:"voiceMinutes,omitempty"`
	SMSCount       *decimal.Decimal `json:"smsCount,omitempty"`
	MinAmount      *decimal.Decimal `json:"minAmount,omitempty"`
	MaxAmount      *decimal.Decimal `json:"maxAmount,omitempty"`
	Benefits       []string         `json:"benefits,omitempty"`
	ValidityPeriod string           `json:"validityPeriod,omitempty"`
}

// ClassifiedProduct is the classifier's normalized view of a catalog
// item. IsVariableValue distinguishes open-range top-ups from
// fixed-value plans; everything downstream branches on it instead of
// re-reading raw catalog fields.
type ClassifiedProduct struct {
	SkuCode         string           `json:"skuCode"`
	Name            string           `json:"name"`
	OperatorCode    string           `json:"operatorCode"`
	CountryISO      string           `json:"countryIso"`
	CurrencyCode    string           `json:"currency"`
	CostPrice       decimal.Decimal  `json:"costPrice"`
	BenefitType     BenefitType      `json:"benefitType"`
	BenefitAmount   decimal.Decimal  `json:"benefitAmount"`
	BenefitUnit     string           `json:"benefitUnit"`
	IsVariableValue bool             `json:"isVariableValue"`
	MinAmount       *decimal.Decimal `json:"minAmount,omitempty"`
	MaxAmount       *decimal.Decimal `json:"maxAmount,omitempty"`
	ValidityPeriod  string           `json:"validityPeriod,omitempty"`
}
