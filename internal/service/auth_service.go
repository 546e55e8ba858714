package service

import (
	"database/sql"

	"github.com/TopsellHQ/topsell_api/internal/models"
	"github.com/TopsellHQ/topsell_api/internal/repository"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

// AuthService provides methods for authenticating storefront API calls.
type AuthService struct {
	orgRepo *repository.OrganizationRepository
}

// NewAuthService constructs a new AuthService.
func NewAuthService(orgRepo *repository.OrganizationRepository) *AuthService {
	return &AuthService{orgRepo: orgRepo}
}

// ValidateAPIKey verifies the provided token against live and sandbox keys.
// Returns the organization, a boolean indicating sandbox mode, or an error.
func (s *AuthService) ValidateAPIKey(token string) (*models.Organization, bool, error) {
	if token == "" {
		return nil, false, utils.ErrInvalidToken
	}

	// Try live key first
	if org, err := s.orgRepo.GetByLiveKey(token); err == nil && org != nil {
		return org, false, nil
	} else if err != nil && err != sql.ErrNoRows {
		return nil, false, err
	}

	// Try sandbox key
	if org, err := s.orgRepo.GetBySandboxKey(token); err == nil && org != nil {
		return org, true, nil
	} else if err != nil && err != sql.ErrNoRows {
		return nil, false, err
	}

	return nil, false, utils.ErrInvalidToken
}

// ValidateOrgID cross-checks a caller-supplied organization id against
// the key's owner. An absent header passes; a mismatch does not.
func (s *AuthService) ValidateOrgID(org *models.Organization, orgID string) bool {
	if org == nil {
		return false
	}
	return orgID == "" || org.PublicID == orgID
}
