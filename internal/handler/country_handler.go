package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nyaruka/phonenumbers"

	"github.com/TopsellHQ/topsell_api/internal/countries"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

// CountryHandler serves the supported destination reference data.
type CountryHandler struct{}

// NewCountryHandler constructs a CountryHandler.
func NewCountryHandler() *CountryHandler {
	return &CountryHandler{}
}

type countryInfo struct {
	Alpha2      string `json:"alpha2"`
	Alpha3      string `json:"alpha3"`
	Name        string `json:"name"`
	CallingCode int    `json:"callingCode"`
}

// ListCountries handles GET /v1/countries
func (h *CountryHandler) ListCountries(c *gin.Context) {
	all := countries.All()

	out := make([]countryInfo, 0, len(all))
	for _, country := range all {
		out = append(out, countryInfo{
			Alpha2:      country.Alpha2,
			Alpha3:      country.Alpha3,
			Name:        country.Name,
			CallingCode: phonenumbers.GetCountryCodeForRegion(country.Alpha2),
		})
	}

	utils.Success(c, 200, "Countries retrieved", gin.H{
		"countries": out,
		"total":     len(out),
	})
}
