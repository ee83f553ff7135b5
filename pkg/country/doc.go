// Package country provides read-only country code registries used to check
// the country prefix of account numbers.
//
// Two registries are available:
//
//   - Table, built from the embedded list of officially assigned ISO 3166-1
//     alpha-2 codes. ISO3166 returns the shared instance.
//   - CLDR, backed by the region data of golang.org/x/text/language. It also
//     accepts codes CLDR treats as countries but ISO only reserves (TA, XK).
//
// Both satisfy Registry and iban.CountryRegistry. Lookups are case-insensitive,
// never block and never fail: anything that cannot be resolved is reported as
// unknown.
//
// # Usage
//
//	reg, err := country.New(country.SourceISO3166)
//	if err != nil {
//		return err
//	}
//	reg.Lookup("mc") // true
//	reg.Lookup("QQ") // false
package country
