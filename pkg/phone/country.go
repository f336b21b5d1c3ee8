package phone

import "strings"

// Country identifies an entry in the pattern table.
type Country int

const (
	// Unknown selects the generic international pattern.
	Unknown Country = iota
	US
	GB
	IN
)

var countryCodes = map[Country]string{
	US: "US",
	GB: "GB",
	IN: "IN",
}

var codeCountries = map[string]Country{
	"US": US,
	"GB": GB,
	"IN": IN,
}

// full country names accepted in place of a code
var countryAliases = map[string]string{
	"UNITED STATES":  "US",
	"UNITED KINGDOM": "GB",
	"INDIA":          "IN",
}

// String returns the two-letter code, or "" for Unknown.
func (c Country) String() string {
	return countryCodes[c]
}

// Pattern returns the regular expression source used to validate numbers for
// the country. Unknown returns the generic fallback.
func (c Country) Pattern() string {
	return patternFor(c).String()
}

// Countries lists the countries with a dedicated pattern.
func Countries() []Country {
	return []Country{US, GB, IN}
}

// ResolveCountry normalises a free-form country value (code or full name,
// any case, surrounding whitespace ignored) into a Country.
func ResolveCountry(value string) Country {
	key := strings.ToUpper(strings.TrimSpace(value))
	if alias, ok := countryAliases[key]; ok {
		key = alias
	}
	return codeCountries[key]
}
