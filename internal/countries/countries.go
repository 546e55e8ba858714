package countries

import (
	"sort"
	"strings"
)

// Country is one destination the platform can sell into.
type Country struct {
	Alpha2 string `json:"alpha2"`
	Alpha3 string `json:"alpha3"`
	Name   string `json:"name"`
}

// supported lists the destination corridors, keyed by ISO 3166-1
// alpha-2. Storefront and settings APIs speak alpha-2; the upstream
// aggregator addresses countries by alpha-3.
var supported = map[string]Country{
	"AF": {"AF", "AFG", "Afghanistan"},
	"AL": {"AL", "ALB", "Albania"},
	"AR": {"AR", "ARG", "Argentina"},
	"AM": {"AM", "ARM", "Armenia"},
	"AU": {"AU", "AUS", "Australia"},
	"AT": {"AT", "AUT", "Austria"},
	"BD": {"BD", "BGD", "Bangladesh"},
	"BE": {"BE", "BEL", "Belgium"},
	"BJ": {"BJ", "BEN", "Benin"},
	"BO": {"BO", "BOL", "Bolivia"},
	"BR": {"BR", "BRA", "Brazil"},
	"BF": {"BF", "BFA", "Burkina Faso"},
	"KH": {"KH", "KHM", "Cambodia"},
	"CM": {"CM", "CMR", "Cameroon"},
	"CA": {"CA", "CAN", "Canada"},
	"CL": {"CL", "CHL", "Chile"},
	"CN": {"CN", "CHN", "China"},
	"CO": {"CO", "COL", "Colombia"},
	"CD": {"CD", "COD", "Democratic Republic of the Congo"},
	"CR": {"CR", "CRI", "Costa Rica"},
	"CI": {"CI", "CIV", "Cote d'Ivoire"},
	"CU": {"CU", "CUB", "Cuba"},
	"DO": {"DO", "DOM", "Dominican Republic"},
	"EC": {"EC", "ECU", "Ecuador"},
	"EG": {"EG", "EGY", "Egypt"},
	"SV": {"SV", "SLV", "El Salvador"},
	"ET": {"ET", "ETH", "Ethiopia"},
	"FJ": {"FJ", "FJI", "Fiji"},
	"FR": {"FR", "FRA", "France"},
	"DE": {"DE", "DEU", "Germany"},
	"GH": {"GH", "GHA", "Ghana"},
	"GR": {"GR", "GRC", "Greece"},
	"GT": {"GT", "GTM", "Guatemala"},
	"GN": {"GN", "GIN", "Guinea"},
	"GY": {"GY", "GUY", "Guyana"},
	"HT": {"HT", "HTI", "Haiti"},
	"HN": {"HN", "HND", "Honduras"},
	"IN": {"IN", "IND", "India"},
	"ID": {"ID", "IDN", "Indonesia"},
	"IQ": {"IQ", "IRQ", "Iraq"},
	"IE": {"IE", "IRL", "Ireland"},
	"IT": {"IT", "ITA", "Italy"},
	"JM": {"JM", "JAM", "Jamaica"},
	"JP": {"JP", "JPN", "Japan"},
	"JO": {"JO", "JOR", "Jordan"},
	"KE": {"KE", "KEN", "Kenya"},
	"KW": {"KW", "KWT", "Kuwait"},
	"LB": {"LB", "LBN", "Lebanon"},
	"LR": {"LR", "LBR", "Liberia"},
	"MG": {"MG", "MDG", "Madagascar"},
	"MW": {"MW", "MWI", "Malawi"},
	"MY": {"MY", "MYS", "Malaysia"},
	"ML": {"ML", "MLI", "Mali"},
	"MX": {"MX", "MEX", "Mexico"},
	"MD": {"MD", "MDA", "Moldova"},
	"MA": {"MA", "MAR", "Morocco"},
	"MZ": {"MZ", "MOZ", "Mozambique"},
	"MM": {"MM", "MMR", "Myanmar"},
	"NP": {"NP", "NPL", "Nepal"},
	"NL": {"NL", "NLD", "Netherlands"},
	"NZ": {"NZ", "NZL", "New Zealand"},
	"NI": {"NI", "NIC", "Nicaragua"},
	"NE": {"NE", "NER", "Niger"},
	"NG": {"NG", "NGA", "Nigeria"},
	"PK": {"PK", "PAK", "Pakistan"},
	"PA": {"PA", "PAN", "Panama"},
	"PY": {"PY", "PRY", "Paraguay"},
	"PE": {"PE", "PER", "Peru"},
	"PH": {"PH", "PHL", "Philippines"},
	"PL": {"PL", "POL", "Poland"},
	"PT": {"PT", "PRT", "Portugal"},
	"QA": {"QA", "QAT", "Qatar"},
	"RO": {"RO", "ROU", "Romania"},
	"RW": {"RW", "RWA", "Rwanda"},
	"SA": {"SA", "SAU", "Saudi Arabia"},
	"SN": {"SN", "SEN", "Senegal"},
	"SL": {"SL", "SLE", "Sierra Leone"},
	"SG": {"SG", "SGP", "Singapore"},
	"SO": {"SO", "SOM", "Somalia"},
	"ZA": {"ZA", "ZAF", "South Africa"},
	"ES": {"ES", "ESP", "Spain"},
	"LK": {"LK", "LKA", "Sri Lanka"},
	"SD": {"SD", "SDN", "Sudan"},
	"SR": {"SR", "SUR", "Suriname"},
	"TZ": {"TZ", "TZA", "Tanzania"},
	"TH": {"TH", "THA", "Thailand"},
	"TG": {"TG", "TGO", "Togo"},
	"TT": {"TT", "TTO", "Trinidad and Tobago"},
	"TN": {"TN", "TUN", "Tunisia"},
	"TR": {"TR", "TUR", "Turkey"},
	"UG": {"UG", "UGA", "Uganda"},
	"UA": {"UA", "UKR", "Ukraine"},
	"AE": {"AE", "ARE", "United Arab Emirates"},
	"GB": {"GB", "GBR", "United Kingdom"},
	"US": {"US", "USA", "United States"},
	"UY": {"UY", "URY", "Uruguay"},
	"UZ": {"UZ", "UZB", "Uzbekistan"},
	"VE": {"VE", "VEN", "Venezuela"},
	"VN": {"VN", "VNM", "Vietnam"},
	"YE": {"YE", "YEM", "Yemen"},
	"ZM": {"ZM", "ZMB", "Zambia"},
	"ZW": {"ZW", "ZWE", "Zimbabwe"},
}

var byAlpha3 = func() map[string]Country {
	m := make(map[string]Country, len(supported))
	for _, c := range supported {
		m[c.Alpha3] = c
	}
	return m
}()

// Lookup finds a supported destination by alpha-2 code, ignoring case.
func Lookup(alpha2 string) (Country, bool) {
	c, ok := supported[strings.ToUpper(strings.TrimSpace(alpha2))]
	return c, ok
}

// FromAlpha3 finds a supported destination by the alpha-3 code the
// upstream aggregator reports.
func FromAlpha3(alpha3 string) (Country, bool) {
	c, ok := byAlpha3[strings.ToUpper(strings.TrimSpace(alpha3))]
	return c, ok
}

// IsSupported reports whether the platform sells into the country.
func IsSupported(alpha2 string) bool {
	_, ok := Lookup(alpha2)
	return ok
}

// Alpha3 translates an alpha-2 code to the alpha-3 code the upstream
// aggregator expects.
func Alpha3(alpha2 string) (string, bool) {
	c, ok := Lookup(alpha2)
	return c.Alpha3, ok
}

// All returns every supported destination sorted by name.
func All() []Country {
	out := make([]Country, 0, len(supported))
	for _, c := range supported {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
