// Package iban implements structural validation of International Bank Account
// Numbers as defined by ISO 13616.
//
// An IBAN value is built once from untrusted input with New and is immutable
// afterwards. Construction rejects anything that is not made of ASCII letters
// and digits, and anything longer than MaxLength characters. Every other
// operation is a total function over a constructed value:
//
//   - Validate runs the ISO 7064 mod-97-10 checksum over the rearranged,
//     numerised account number.
//   - GenerateCheckDigits computes the two check digits the account number
//     should carry.
//   - IsCorrect combines both checks.
//   - BelongsToCountry checks the country prefix against a CountryRegistry.
//
// # Usage
//
//	acc, err := iban.New("mc793903645089c80jga29my747")
//	if err != nil {
//		var ibanErr *iban.Error
//		if errors.As(err, &ibanErr) {
//			// ibanErr.Kind is InvalidCharacters or TooLong
//		}
//		return err
//	}
//
//	acc.Electronic() // "MC793903645089C80JGA29MY747"
//	acc.String()     // "MC79 3903645089C80JGA29MY747"
//	acc.IsCorrect()  // true
//
// # Checksum
//
// The numerised form of a 34 character account number is up to 68 digits
// long, which does not fit into any machine integer. The checksum is computed
// by folding digits into a running remainder left to right, so no arbitrary
// precision arithmetic is involved and nothing is allocated.
//
// The package holds no state and is safe for concurrent use.
package iban
