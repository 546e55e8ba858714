package service

import (
	"testing"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

func TestValidateOrgID(t *testing.T) {
	svc := &AuthService{}
	org := &models.Organization{PublicID: "org-7c2f"}

	tests := []struct {
		name  string
		org   *models.Organization
		orgID string
		want  bool
	}{
		{
			name:  "absent header passes",
			org:   org,
			orgID: "",
			want:  true,
		},
		{
			name:  "matching id passes",
			org:   org,
			orgID: "org-7c2f",
			want:  true,
		},
		{
			name:  "mismatched id fails",
			org:   org,
			orgID: "org-other",
			want:  false,
		},
		{
			name:  "nil organization fails",
			org:   nil,
			orgID: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.ValidateOrgID(tt.org, tt.orgID); got != tt.want {
				t.Errorf("ValidateOrgID(%v, %q) = %v, want %v", tt.org, tt.orgID, got, tt.want)
			}
		})
	}
}
