package service

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/TopsellHQ/topsell_api/internal/models"
	"github.com/TopsellHQ/topsell_api/internal/repository"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

// OrganizationService handles organization business logic.
type OrganizationService struct {
	orgRepo *repository.OrganizationRepository
}

// NewOrganizationService constructs an OrganizationService.
func NewOrganizationService(orgRepo *repository.OrganizationRepository) *OrganizationService {
	return &OrganizationService{orgRepo: orgRepo}
}

// CreateOrganizationRequest represents the request to create a new organization.
type CreateOrganizationRequest struct {
	Name               string `json:"name" binding:"required"`
	Slug               string `json:"slug" binding:"required"`
	SettlementCurrency string `json:"settlementCurrency"`
	IsActive           *bool  `json:"isActive"`
}

// UpdateOrganizationRequest represents the request to update an organization.
type UpdateOrganizationRequest struct {
	Name               string `json:"name"`
	SettlementCurrency string `json:"settlementCurrency"`
	IsActive           *bool  `json:"isActive"`
}

// CreateOrganization creates a new organization with auto-generated keys.
func (s *OrganizationService) CreateOrganization(req *CreateOrganizationRequest) (*models.Organization, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	existing, _ := s.orgRepo.GetBySlug(slug)
	if existing != nil {
		return nil, utils.ErrOrganizationExists
	}

	liveKey, err := utils.GenerateLiveKey()
	if err != nil {
		return nil, err
	}

	sandboxKey, err := utils.GenerateSandboxKey()
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(req.SettlementCurrency)
	if currency == "" {
		currency = "USD"
	}

	// default active true if not provided
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	org := &models.Organization{
		PublicID:           uuid.New().String(),
		Name:               req.Name,
		Slug:               slug,
		SettlementCurrency: currency,
		LiveKey:            liveKey,
		SandboxKey:         sandboxKey,
		IsActive:           active,
	}

	if err := s.orgRepo.Create(org); err != nil {
		return nil, err
	}

	return org, nil
}

// GetOrganization retrieves an organization by numeric id.
func (s *OrganizationService) GetOrganization(id int) (*models.Organization, error) {
	return s.orgRepo.GetByID(id)
}

// GetOrganizationByPublicID retrieves an organization by public identifier.
func (s *OrganizationService) GetOrganizationByPublicID(publicID string) (*models.Organization, error) {
	org, err := s.orgRepo.GetByPublicID(publicID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrInvalidOrganization
		}
		return nil, err
	}
	return org, nil
}

// ListOrganizations retrieves a page of organizations and the total count.
func (s *OrganizationService) ListOrganizations(page, limit int) ([]*models.Organization, int, error) {
	return s.orgRepo.List(page, limit)
}

// UpdateOrganization updates an organization.
func (s *OrganizationService) UpdateOrganization(publicID string, req *UpdateOrganizationRequest) (*models.Organization, error) {
	org, err := s.GetOrganizationByPublicID(publicID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		org.Name = req.Name
	}
	if req.SettlementCurrency != "" {
		org.SettlementCurrency = strings.ToUpper(req.SettlementCurrency)
	}
	if req.IsActive != nil {
		org.IsActive = *req.IsActive
	}

	if err := s.orgRepo.Update(org); err != nil {
		return nil, err
	}

	return org, nil
}

// RegenerateKeys regenerates API keys for an organization.
func (s *OrganizationService) RegenerateKeys(publicID string, keyType string) (*models.Organization, error) {
	org, err := s.GetOrganizationByPublicID(publicID)
	if err != nil {
		return nil, err
	}

	switch keyType {
	case "live":
		newKey, err := utils.GenerateLiveKey()
		if err != nil {
			return nil, err
		}
		org.LiveKey = newKey
	case "sandbox":
		newKey, err := utils.GenerateSandboxKey()
		if err != nil {
			return nil, err
		}
		org.SandboxKey = newKey
	default:
		return nil, utils.ErrInvalidKeyType
	}

	if err := s.orgRepo.Update(org); err != nil {
		return nil, err
	}

	return org, nil
}
