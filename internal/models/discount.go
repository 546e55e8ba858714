package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType selects how a discount value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is a stored, organization-scoped discount record.
// UsageCount is a snapshot maintained by the redemption bookkeeping
// flow; pricing lookups read it but never change it.
type Discount struct {
	ID                  int              `db:"id" json:"id"`
	OrganizationID      int              `db:"organization_id" json:"organizationId"`
	Name                string           `db:"name" json:"name"`
	Type                DiscountType     `db:"discount_type" json:"type"`
	Value               decimal.Decimal  `db:"value" json:"value"`
	IsActive            bool             `db:"is_active" json:"isActive"`
	StartDate           *time.Time       `db:"start_date" json:"startDate,omitempty"`
	EndDate             *time.Time       `db:"end_date" json:"endDate,omitempty"`
	MinPurchaseAmount   *decimal.Decimal `db:"min_purchase_amount" json:"minPurchaseAmount,omitempty"`
	MaxDiscountAmount   *decimal.Decimal `db:"max_discount_amount" json:"maxDiscountAmount,omitempty"`
	ApplicableCountries []string         `db:"applicable_countries" json:"applicableCountries"`
	UsageLimit          *int             `db:"usage_limit" json:"usageLimit,omitempty"`
	UsageCount          int              `db:"usage_count" json:"usageCount"`
	CreatedAt           time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time        `db:"updated_at" json:"updatedAt"`
}

// IsValid reports whether the record is usable at the given instant:
// active, inside its date window, with usage budget remaining. Absent
// window bounds are open; absent usage limit is unlimited.
func (d *Discount) IsValid(now time.Time) bool {
	if !d.IsActive {
		return false
	}
	if d.StartDate != nil && now.Before(*d.StartDate) {
		return false
	}
	if d.EndDate != nil && now.After(*d.EndDate) {
		return false
	}
	if d.UsageLimit != nil && d.UsageCount >= *d.UsageLimit {
		return false
	}
	return true
}
