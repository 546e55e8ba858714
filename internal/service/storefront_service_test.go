package service

import (
	"errors"
	"testing"

	"github.com/TopsellHQ/topsell_api/internal/models"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

func TestResolveCountry(t *testing.T) {
	svc := &StorefrontService{}

	tests := []struct {
		name    string
		country string
		phone   string
		want    string
		wantErr error
	}{
		{
			name:    "explicit country code",
			country: "CA",
			want:    "CA",
		},
		{
			name:    "country code is case insensitive",
			country: "ca",
			want:    "CA",
		},
		{
			name:    "explicit country wins over phone",
			country: "FR",
			phone:   "+16502530000",
			want:    "FR",
		},
		{
			name:    "unsupported country code",
			country: "XX",
			wantErr: utils.ErrInvalidCountry,
		},
		{
			name:  "US number resolves to US",
			phone: "+16502530000",
			want:  "US",
		},
		{
			name:  "Indian number resolves to IN",
			phone: "+919876543210",
			want:  "IN",
		},
		{
			name:    "unparseable phone",
			phone:   "not-a-phone",
			wantErr: utils.ErrInvalidPhoneNumber,
		},
		{
			name:    "well formed but invalid number",
			phone:   "+15555555555",
			wantErr: utils.ErrInvalidPhoneNumber,
		},
		{
			name:    "neither country nor phone",
			wantErr: utils.ErrInvalidCountry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ResolveCountry(tt.country, tt.phone)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveCountry(%q, %q) error = %v, want %v", tt.country, tt.phone, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveCountry(%q, %q) unexpected error: %v", tt.country, tt.phone, err)
			}
			if got != tt.want {
				t.Errorf("ResolveCountry(%q, %q) = %q, want %q", tt.country, tt.phone, got, tt.want)
			}
		})
	}
}

func TestQuantityLimitsFallback(t *testing.T) {
	resale := &models.ResaleSettings{MinQuantity: 2, MaxQuantity: 5}
	storefront := &models.StorefrontSettings{MinQuantity: 1, MaxQuantity: 10}

	tests := []struct {
		name string
		rs   *models.ResaleSettings
		sf   *models.StorefrontSettings
		want models.QuantityLimits
	}{
		{
			name: "resale row wins",
			rs:   resale,
			sf:   storefront,
			want: models.QuantityLimits{MinQuantity: 2, MaxQuantity: 5},
		},
		{
			name: "storefront defaults when no resale row",
			sf:   storefront,
			want: models.QuantityLimits{MinQuantity: 1, MaxQuantity: 10},
		},
		{
			name: "unbounded when neither exists",
			want: models.QuantityLimits{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quantityLimits(tt.rs, tt.sf); got != tt.want {
				t.Errorf("quantityLimits() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindItem(t *testing.T) {
	items := []models.CatalogItem{
		{SkuCode: "a1"},
		{SkuCode: "b2"},
	}

	if _, found := findItem(items, "b2"); !found {
		t.Error("findItem should locate an existing SKU")
	}
	if _, found := findItem(items, "c3"); found {
		t.Error("findItem should miss an absent SKU")
	}
	if _, found := findItem(nil, "a1"); found {
		t.Error("findItem on an empty catalog should miss")
	}
}
