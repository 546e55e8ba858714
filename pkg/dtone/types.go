package dtone

import "github.com/shopspring/decimal"

// ProductType is the DVS product family.
type ProductType string

const (
	ProductFixedValueRecharge  ProductType = "FIXED_VALUE_RECHARGE"
	ProductRangedValueRecharge ProductType = "RANGED_VALUE_RECHARGE"
)

// BenefitType is a typed allowance category.
type BenefitType string

const (
	BenefitCredits  BenefitType = "CREDITS"
	BenefitData     BenefitType = "DATA"
	BenefitTalktime BenefitType = "TALKTIME"
	BenefitSMS      BenefitType = "SMS"
)

// Product is one sellable item from the DVS catalog. Only the fields
// the platform consumes are modeled.
type Product struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Type        ProductType `json:"type"`
	Operator    Operator    `json:"operator"`
	Benefits    []Benefit   `json:"benefits"`
	Validity    *Validity   `json:"validity"`
	Source      Value       `json:"source"`
	Destination Value       `json:"destination"`
	Prices      Prices      `json:"prices"`
}

// Operator identifies the network operator fulfilling a product.
type Operator struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Country Country `json:"country"`
}

// Country as DVS reports it, with an ISO 3166-1 alpha-3 code.
type Country struct {
	Name    string `json:"name"`
	ISOCode string `json:"iso_code"`
}

// Benefit is a typed allowance delivered to the beneficiary.
type Benefit struct {
	Type   BenefitType   `json:"type"`
	Unit   string        `json:"unit"`
	Amount BenefitAmount `json:"amount"`
}

// BenefitAmount carries the allowance size, bonus included.
type BenefitAmount struct {
	Base              decimal.Decimal `json:"base"`
	PromotionBonus    decimal.Decimal `json:"promotion_bonus"`
	TotalIncludingTax decimal.Decimal `json:"total_including_tax"`
}

// Validity is how long a plan stays active after redemption.
type Validity struct {
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// Value is a monetary amount on one side of the transfer. Ranged
// products carry bounds instead of a fixed amount.
type Value struct {
	Amount        *decimal.Decimal `json:"amount"`
	Unit          string           `json:"unit"`
	MinimumAmount *decimal.Decimal `json:"minimum_amount,omitempty"`
	MaximumAmount *decimal.Decimal `json:"maximum_amount,omitempty"`
	Increment     *decimal.Decimal `json:"increment,omitempty"`
}

// Prices carries DVS pricing for a product.
type Prices struct {
	Wholesale Price `json:"wholesale"`
	Retail    Price `json:"retail"`
}

// Price is one price point.
type Price struct {
	Amount *decimal.Decimal `json:"amount"`
	Fee    *decimal.Decimal `json:"fee,omitempty"`
	Unit   string           `json:"unit"`
}

// Balance is one ledger balance on the DVS account.
type Balance struct {
	Available   decimal.Decimal `json:"available"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Holding     decimal.Decimal `json:"holding"`
	Unit        string          `json:"unit"`
	UnitType    string          `json:"unit_type"`
}

// APIError is the error body DVS returns with non-2xx statuses.
type APIError struct {
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}
