package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

// PricingRuleRepository provides data access methods for pricing_rules table.
type PricingRuleRepository struct {
	db *sqlx.DB
}

// NewPricingRuleRepository creates a new PricingRuleRepository.
func NewPricingRuleRepository(db *sqlx.DB) *PricingRuleRepository {
	return &PricingRuleRepository{db: db}
}

// ListByOrganization retrieves an organization's markup rules ordered
// the way the resolver consumes them: priority descending, oldest
// first among ties.
func (r *PricingRuleRepository) ListByOrganization(orgID int) ([]*models.PricingRule, error) {
	query := `SELECT id, organization_id, name, priority, is_active, countries,
                     markup_type, markup_value, created_at, updated_at
              FROM pricing_rules
              WHERE organization_id = $1
              ORDER BY priority DESC, id ASC`

	rows, err := r.db.Queryx(query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*models.PricingRule
	for rows.Next() {
		var rule models.PricingRule
		// Explicit scan to use pq.Array for the TEXT[] field.
		if err := rows.Scan(
			&rule.ID,
			&rule.OrganizationID,
			&rule.Name,
			&rule.Priority,
			&rule.IsActive,
			pq.Array(&rule.Countries),
			&rule.MarkupType,
			&rule.MarkupValue,
			&rule.CreatedAt,
			&rule.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rules = append(rules, &rule)
	}

	return rules, rows.Err()
}

// GetByID finds a rule by id within an organization.
func (r *PricingRuleRepository) GetByID(orgID, id int) (*models.PricingRule, error) {
	query := `SELECT id, organization_id, name, priority, is_active, countries,
                     markup_type, markup_value, created_at, updated_at
              FROM pricing_rules
              WHERE id = $1 AND organization_id = $2`

	row := r.db.QueryRowx(query, id, orgID)

	var rule models.PricingRule
	if err := row.Scan(
		&rule.ID,
		&rule.OrganizationID,
		&rule.Name,
		&rule.Priority,
		&rule.IsActive,
		pq.Array(&rule.Countries),
		&rule.MarkupType,
		&rule.MarkupValue,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rule, nil
}

// Create creates a new pricing rule.
func (r *PricingRuleRepository) Create(rule *models.PricingRule) error {
	query := `INSERT INTO pricing_rules (organization_id, name, priority, is_active, countries, markup_type, markup_value)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(query,
		rule.OrganizationID,
		rule.Name,
		rule.Priority,
		rule.IsActive,
		pq.Array(rule.Countries),
		rule.MarkupType,
		rule.MarkupValue,
	).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
}

// Update updates an existing pricing rule.
func (r *PricingRuleRepository) Update(rule *models.PricingRule) error {
	query := `UPDATE pricing_rules
              SET name = $1, priority = $2, is_active = $3, countries = $4,
                  markup_type = $5, markup_value = $6
              WHERE id = $7 AND organization_id = $8
              RETURNING updated_at`

	return r.db.QueryRowx(query,
		rule.Name,
		rule.Priority,
		rule.IsActive,
		pq.Array(rule.Countries),
		rule.MarkupType,
		rule.MarkupValue,
		rule.ID,
		rule.OrganizationID,
	).Scan(&rule.UpdatedAt)
}

// Delete deletes a pricing rule.
func (r *PricingRuleRepository) Delete(orgID, id int) error {
	query := `DELETE FROM pricing_rules WHERE id = $1 AND organization_id = $2`
	_, err := r.db.Exec(query, id, orgID)
	return err
}
