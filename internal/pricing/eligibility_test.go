package pricing

import (
	"strings"
	"testing"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

func TestIsAvailableInCountry(t *testing.T) {
	tests := []struct {
		name     string
		settings *models.ResaleSettings
		country  string
		want     bool
	}{
		{"nil settings allow everything", nil, "CA", true},
		{
			"empty lists allow everything",
			&models.ResaleSettings{},
			"CA",
			true,
		},
		{
			"allowlist admits listed country",
			&models.ResaleSettings{AllowedCountries: []string{"CA", "US"}},
			"CA",
			true,
		},
		{
			"allowlist excludes unlisted country",
			&models.ResaleSettings{AllowedCountries: []string{"US"}},
			"CA",
			false,
		},
		{
			"blocklist wins over allowlist",
			&models.ResaleSettings{AllowedCountries: []string{"CA"}, BlockedCountries: []string{"CA"}},
			"CA",
			false,
		},
		{
			"blocklist alone blocks",
			&models.ResaleSettings{BlockedCountries: []string{"CA"}},
			"CA",
			false,
		},
		{
			"comparison ignores case",
			&models.ResaleSettings{BlockedCountries: []string{"ca"}},
			"CA",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAvailableInCountry(tt.settings, tt.country); got != tt.want {
				t.Errorf("IsAvailableInCountry() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCountryEnabled(t *testing.T) {
	sf := &models.StorefrontSettings{EnabledCountries: []string{"CA", "GB"}}
	if !CountryEnabled(sf, "gb") {
		t.Error("enabled country rejected")
	}
	if CountryEnabled(sf, "US") {
		t.Error("unlisted country accepted")
	}
	sf.AllCountriesEnabled = true
	if !CountryEnabled(sf, "US") {
		t.Error("allCountriesEnabled ignored")
	}
	if !CountryEnabled(nil, "US") {
		t.Error("nil settings should not gate")
	}
}

func TestTypeEnabled(t *testing.T) {
	sf := &models.StorefrontSettings{PlansEnabled: true, TopupsEnabled: false}
	if !TypeEnabled(sf, false) {
		t.Error("plans toggle should admit plans")
	}
	if TypeEnabled(sf, true) {
		t.Error("disabled top-up toggle should exclude variable products")
	}
}

func TestValidateQuantityBoundsInclusive(t *testing.T) {
	limits := models.QuantityLimits{MinQuantity: 2, MaxQuantity: 5}

	tests := []struct {
		qty        int
		valid      bool
		wantInText string
	}{
		{2, true, ""},
		{5, true, ""},
		{3, true, ""},
		{1, false, "minimum"},
		{6, false, "maximum"},
		{0, false, "at least 1"},
		{-1, false, "at least 1"},
	}

	for _, tt := range tests {
		got := ValidateQuantity(limits, tt.qty)
		if got.Valid != tt.valid {
			t.Errorf("ValidateQuantity(%d).Valid = %v, want %v", tt.qty, got.Valid, tt.valid)
			continue
		}
		if !tt.valid && !strings.Contains(got.Reason, tt.wantInText) {
			t.Errorf("ValidateQuantity(%d).Reason = %q, want it to name the %s bound", tt.qty, got.Reason, tt.wantInText)
		}
	}
}

func TestValidateQuantitySingleUnitWindow(t *testing.T) {
	limits := models.QuantityLimits{MinQuantity: 1, MaxQuantity: 1}
	if got := ValidateQuantity(limits, 1); !got.Valid {
		t.Errorf("quantity 1 in a [1,1] window must be valid, got %q", got.Reason)
	}
	for _, qty := range []int{0, 2} {
		if got := ValidateQuantity(limits, qty); got.Valid {
			t.Errorf("quantity %d in a [1,1] window must be invalid", qty)
		}
	}
}

func TestValidateQuantityUnbounded(t *testing.T) {
	if got := ValidateQuantity(models.QuantityLimits{}, 1000000); !got.Valid {
		t.Errorf("zero bounds should be unbounded, got %q", got.Reason)
	}
	if got := ValidateQuantity(models.QuantityLimits{MinQuantity: 1}, 1); !got.Valid {
		t.Errorf("min bound should be inclusive, got %q", got.Reason)
	}
}
