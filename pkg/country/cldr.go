package country

import (
	"strings"

	"golang.org/x/text/language"
)

// CLDR resolves codes against the Unicode CLDR region data shipped with
// golang.org/x/text. Grouping regions (EU, UN) and private-use codes (QM-QZ,
// XA-XZ, ZZ) are not countries.
type CLDR struct{}

// Lookup reports whether code is a two-letter region CLDR considers a country.
func (CLDR) Lookup(code string) bool {
	code = strings.ToUpper(code)
	if !isAlpha2(code) {
		return false
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return false
	}
	return region.IsCountry()
}
