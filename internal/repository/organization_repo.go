package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

// OrganizationRepository provides data access methods for organizations table.
type OrganizationRepository struct {
	db *sqlx.DB
}

// NewOrganizationRepository creates a new OrganizationRepository.
func NewOrganizationRepository(db *sqlx.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// getBy is a small helper to fetch a single organization by a specific
// column using a prepared statement.
func (r *OrganizationRepository) getBy(where string, arg any) (*models.Organization, error) {
	const base = `SELECT id, public_id, name, slug, settlement_currency, live_key, sandbox_key,
		is_active, created_at, updated_at
		FROM organizations WHERE `

	stmt, err := r.db.Preparex(base + where + " LIMIT 1")
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var org models.Organization
	if err := stmt.Get(&org, arg); err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByLiveKey finds an organization by live API key.
func (r *OrganizationRepository) GetByLiveKey(key string) (*models.Organization, error) {
	return r.getBy("live_key = $1", key)
}

// GetBySandboxKey finds an organization by sandbox API key.
func (r *OrganizationRepository) GetBySandboxKey(key string) (*models.Organization, error) {
	return r.getBy("sandbox_key = $1", key)
}

// GetByPublicID finds an organization by public identifier.
func (r *OrganizationRepository) GetByPublicID(publicID string) (*models.Organization, error) {
	return r.getBy("public_id = $1", publicID)
}

// GetByID finds an organization by numeric id.
func (r *OrganizationRepository) GetByID(id int) (*models.Organization, error) {
	return r.getBy("id = $1", id)
}

// GetBySlug finds an organization by slug.
func (r *OrganizationRepository) GetBySlug(slug string) (*models.Organization, error) {
	return r.getBy("slug = $1", slug)
}

// Create creates a new organization.
func (r *OrganizationRepository) Create(org *models.Organization) error {
	query := `INSERT INTO organizations (public_id, name, slug, settlement_currency, live_key, sandbox_key, is_active)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(query,
		org.PublicID,
		org.Name,
		org.Slug,
		org.SettlementCurrency,
		org.LiveKey,
		org.SandboxKey,
		org.IsActive,
	).Scan(&org.ID, &org.CreatedAt, &org.UpdatedAt)
}

// Update updates an existing organization.
func (r *OrganizationRepository) Update(org *models.Organization) error {
	query := `UPDATE organizations
              SET name = $1, slug = $2, settlement_currency = $3,
                  live_key = $4, sandbox_key = $5, is_active = $6
              WHERE id = $7
              RETURNING updated_at`

	return r.db.QueryRowx(query,
		org.Name,
		org.Slug,
		org.SettlementCurrency,
		org.LiveKey,
		org.SandboxKey,
		org.IsActive,
		org.ID,
	).Scan(&org.UpdatedAt)
}

// List retrieves organizations newest first with pagination and also
// returns the total count. Page begins at 1.
func (r *OrganizationRepository) List(page, limit int) ([]*models.Organization, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	offset := (page - 1) * limit

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM organizations`); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, public_id, name, slug, settlement_currency, live_key, sandbox_key,
                     is_active, created_at, updated_at
              FROM organizations
              ORDER BY created_at DESC
              LIMIT $1 OFFSET $2`

	var orgs []*models.Organization
	if err := r.db.Select(&orgs, query, limit, offset); err != nil {
		return nil, 0, err
	}
	return orgs, total, nil
}
