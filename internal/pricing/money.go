package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// roundMoney rounds a published amount half-up to two decimal places.
// decimal.Round ties away from zero, which is half-up for the
// non-negative amounts this engine publishes.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// percentOf computes base * pct / 100 without intermediate rounding.
func percentOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}
