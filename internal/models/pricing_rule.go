package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarkupType selects how a pricing rule computes its margin.
type MarkupType string

const (
	MarkupPercentage MarkupType = "percentage"
	MarkupFixed      MarkupType = "fixed"
)

// PricingRule is an operator-managed markup rule scoped to an
// organization. An empty Countries list applies the rule to every
// destination. Higher Priority wins; ties keep stored order.
type PricingRule struct {
	ID             int             `db:"id" json:"id"`
	OrganizationID int             `db:"organization_id" json:"organizationId"`
	Name           string          `db:"name" json:"name"`
	Priority       int             `db:"priority" json:"priority"`
	IsActive       bool            `db:"is_active" json:"isActive"`
	Countries      []string        `db:"countries" json:"countries"`
	MarkupType     MarkupType      `db:"markup_type" json:"markupType"`
	MarkupValue    decimal.Decimal `db:"markup_value" json:"markupValue"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}
