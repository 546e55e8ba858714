package pricing

import (
	"fmt"
	"strings"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

// normalizeCountry upper-cases an ISO 3166-1 alpha-2 code. Stored
// scopes and request input may disagree on case, so every comparison
// in this package goes through it.
func normalizeCountry(cc string) string {
	return strings.ToUpper(strings.TrimSpace(cc))
}

func countryInList(list []string, cc string) bool {
	for _, c := range list {
		if normalizeCountry(c) == cc {
			return true
		}
	}
	return false
}

// IsAvailableInCountry applies the per-product country policy. The
// blocklist wins over the allowlist even when a country appears in
// both; an empty allowlist allows every country; nil settings impose
// no restriction.
func IsAvailableInCountry(s *models.ResaleSettings, country string) bool {
	if s == nil {
		return true
	}
	cc := normalizeCountry(country)
	if countryInList(s.BlockedCountries, cc) {
		return false
	}
	if len(s.AllowedCountries) == 0 {
		return true
	}
	return countryInList(s.AllowedCountries, cc)
}

// CountryEnabled applies the storefront-level destination gate.
func CountryEnabled(sf *models.StorefrontSettings, country string) bool {
	if sf == nil || sf.AllCountriesEnabled {
		return true
	}
	return countryInList(sf.EnabledCountries, normalizeCountry(country))
}

// TypeEnabled applies the storefront product-family toggles: variable
// top-ups ride the top-up toggle, everything else the plan toggle.
func TypeEnabled(sf *models.StorefrontSettings, isVariableValue bool) bool {
	if sf == nil {
		return true
	}
	if isVariableValue {
		return sf.TopupsEnabled
	}
	return sf.PlansEnabled
}

// QuantityCheck is the structured result of a quantity validation. On
// failure Reason names the violated bound.
type QuantityCheck struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ValidateQuantity checks qty against inclusive bounds. A zero bound
// is unbounded on that side, except that quantity always has to be at
// least one.
func ValidateQuantity(limits models.QuantityLimits, qty int) QuantityCheck {
	if qty < 1 {
		return QuantityCheck{Reason: "quantity must be at least 1"}
	}
	if limits.MinQuantity > 0 && qty < limits.MinQuantity {
		return QuantityCheck{Reason: fmt.Sprintf("quantity %d is below the minimum of %d", qty, limits.MinQuantity)}
	}
	if limits.MaxQuantity > 0 && qty > limits.MaxQuantity {
		return QuantityCheck{Reason: fmt.Sprintf("quantity %d exceeds the maximum of %d", qty, limits.MaxQuantity)}
	}
	return QuantityCheck{Valid: true}
}
