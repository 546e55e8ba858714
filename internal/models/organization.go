package models

import "time"

// Organization is a storefront tenant reselling catalog products
// under its own pricing policy. API keys are omitted from JSON unless
// an admin flow explicitly includes them.
type Organization struct {
	ID                 int       `db:"id" json:"id"`
	PublicID           string    `db:"public_id" json:"organizationId"`
	Name               string    `db:"name" json:"name"`
	Slug               string    `db:"slug" json:"slug"`
	SettlementCurrency string    `db:"settlement_currency" json:"settlementCurrency"`
	LiveKey            string    `db:"live_key" json:"liveKey,omitempty"`
	SandboxKey         string    `db:"sandbox_key" json:"sandboxKey,omitempty"`
	IsActive           bool      `db:"is_active" json:"isActive"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}
