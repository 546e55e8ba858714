package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

// DiscountRepository provides data access methods for discounts table.
type DiscountRepository struct {
	db *sqlx.DB
}

// NewDiscountRepository creates a new DiscountRepository.
func NewDiscountRepository(db *sqlx.DB) *DiscountRepository {
	return &DiscountRepository{db: db}
}

// ListByOrganization retrieves all discount records for an organization,
// newest first. Validity filtering happens at pricing time, not here.
func (r *DiscountRepository) ListByOrganization(orgID int) ([]*models.Discount, error) {
	query := `SELECT id, organization_id, name, discount_type, value, is_active,
                     start_date, end_date, min_purchase_amount, max_discount_amount,
                     applicable_countries, usage_limit, usage_count, created_at, updated_at
              FROM discounts
              WHERE organization_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.Queryx(query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var discounts []*models.Discount
	for rows.Next() {
		var d models.Discount
		// Explicit scan to use pq.Array for the TEXT[] field.
		if err := rows.Scan(
			&d.ID,
			&d.OrganizationID,
			&d.Name,
			&d.Type,
			&d.Value,
			&d.IsActive,
			&d.StartDate,
			&d.EndDate,
			&d.MinPurchaseAmount,
			&d.MaxDiscountAmount,
			pq.Array(&d.ApplicableCountries),
			&d.UsageLimit,
			&d.UsageCount,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		discounts = append(discounts, &d)
	}

	return discounts, rows.Err()
}

// GetByID finds a discount by id within an organization.
func (r *DiscountRepository) GetByID(orgID, id int) (*models.Discount, error) {
	query := `SELECT id, organization_id, name, discount_type, value, is_active,
                     start_date, end_date, min_purchase_amount, max_discount_amount,
                     applicable_countries, usage_limit, usage_count, created_at, updated_at
              FROM discounts
              WHERE id = $1 AND organization_id = $2`

	row := r.db.QueryRowx(query, id, orgID)

	var d models.Discount
	if err := row.Scan(
		&d.ID,
		&d.OrganizationID,
		&d.Name,
		&d.Type,
		&d.Value,
		&d.IsActive,
		&d.StartDate,
		&d.EndDate,
		&d.MinPurchaseAmount,
		&d.MaxDiscountAmount,
		pq.Array(&d.ApplicableCountries),
		&d.UsageLimit,
		&d.UsageCount,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create creates a new discount.
func (r *DiscountRepository) Create(d *models.Discount) error {
	query := `INSERT INTO discounts (organization_id, name, discount_type, value, is_active,
                                     start_date, end_date, min_purchase_amount, max_discount_amount,
                                     applicable_countries, usage_limit)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
              RETURNING id, usage_count, created_at, updated_at`

	return r.db.QueryRowx(query,
		d.OrganizationID,
		d.Name,
		d.Type,
		d.Value,
		d.IsActive,
		d.StartDate,
		d.EndDate,
		d.MinPurchaseAmount,
		d.MaxDiscountAmount,
		pq.Array(d.ApplicableCountries),
		d.UsageLimit,
	).Scan(&d.ID, &d.UsageCount, &d.CreatedAt, &d.UpdatedAt)
}

// Update updates an existing discount. Usage counters are not writable
// through this path; IncrementUsage owns them.
func (r *DiscountRepository) Update(d *models.Discount) error {
	query := `UPDATE discounts
              SET name = $1, discount_type = $2, value = $3, is_active = $4,
                  start_date = $5, end_date = $6, min_purchase_amount = $7,
                  max_discount_amount = $8, applicable_countries = $9, usage_limit = $10
              WHERE id = $11 AND organization_id = $12
              RETURNING usage_count, updated_at`

	return r.db.QueryRowx(query,
		d.Name,
		d.Type,
		d.Value,
		d.IsActive,
		d.StartDate,
		d.EndDate,
		d.MinPurchaseAmount,
		d.MaxDiscountAmount,
		pq.Array(d.ApplicableCountries),
		d.UsageLimit,
		d.ID,
		d.OrganizationID,
	).Scan(&d.UsageCount, &d.UpdatedAt)
}

// Delete deletes a discount.
func (r *DiscountRepository) Delete(orgID, id int) error {
	query := `DELETE FROM discounts WHERE id = $1 AND organization_id = $2`
	_, err := r.db.Exec(query, id, orgID)
	return err
}

// IncrementUsage records one redemption against a discount. The guard
// in the WHERE clause keeps the counter from passing usage_limit under
// concurrent redemptions; sql.ErrNoRows means the budget is already
// exhausted (or the discount does not exist).
func (r *DiscountRepository) IncrementUsage(orgID, id int) (int, error) {
	query := `UPDATE discounts
              SET usage_count = usage_count + 1
              WHERE id = $1 AND organization_id = $2
                AND (usage_limit IS NULL OR usage_count < usage_limit)
              RETURNING usage_count`

	var count int
	if err := r.db.QueryRowx(query, id, orgID).Scan(&count); err != nil {
		if err == sql.ErrNoRows {
			return 0, sql.ErrNoRows
		}
		return 0, err
	}
	return count, nil
}
