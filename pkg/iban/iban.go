package iban

import "strings"

// MaxLength is the longest account number ISO 13616 allows.
const MaxLength = 34

// CountryRegistry resolves two-letter country codes. Implementations must be
// safe for concurrent use and must not block.
type CountryRegistry interface {
	Lookup(code string) bool
}

// IBAN is an immutable, normalized account number. The zero value is not a
// valid IBAN; use New.
type IBAN struct {
	raw        string
	normalized string
}

// New validates the character set and length of account and returns the
// normalized (upper-case) IBAN. The returned error is always an *Error.
func New(account string) (IBAN, error) {
	if account == "" || !isAlphanumeric(account) {
		return IBAN{}, &Error{Kind: InvalidCharacters, Account: account, Length: len(account)}
	}
	if len(account) > MaxLength {
		return IBAN{}, &Error{Kind: TooLong, Account: account, Length: len(account)}
	}
	return IBAN{raw: account, normalized: strings.ToUpper(account)}, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(account string) IBAN {
	i, err := New(account)
	if err != nil {
		panic(err)
	}
	return i
}

// Raw returns the input the value was built from.
func (i IBAN) Raw() string { return i.raw }

// Electronic returns the normalized form without spaces.
func (i IBAN) Electronic() string { return i.normalized }

// String returns the display form: a single space after the fourth character.
func (i IBAN) String() string {
	n := min(4, len(i.normalized))
	return i.normalized[:n] + " " + i.normalized[n:]
}

// CountryCode returns the first two characters.
func (i IBAN) CountryCode() string {
	return i.normalized[:min(2, len(i.normalized))]
}

// CheckDigits returns the characters at positions 2 and 3 as carried by the
// account number. Inputs shorter than four characters yield fewer than two.
func (i IBAN) CheckDigits() string {
	s := i.normalized
	if len(s) <= 2 {
		return ""
	}
	return s[2:min(4, len(s))]
}

// Validate reports whether the account number passes the mod-97 check.
func (i IBAN) Validate() bool {
	return checksum(i.normalized) == 1
}

// GenerateCheckDigits returns the two check digits the account number must
// carry, left-padded with zero.
func (i IBAN) GenerateCheckDigits() string {
	s := i.normalized
	var tail string
	if len(s) > 4 {
		tail = s[4:]
	}
	// 98 - (0..96) is always two digits at most and never zero.
	d := 98 - checksum(s[:min(2, len(s))]+"00"+tail)
	return string([]byte{'0' + byte(d/10), '0' + byte(d%10)})
}

// IsCorrect reports whether the carried check digits match the generated ones
// and the checksum validates.
func (i IBAN) IsCorrect() bool {
	digitsMatch := i.GenerateCheckDigits() == i.CheckDigits()
	return digitsMatch && i.Validate()
}

// BelongsToCountry reports whether the account number starts with two
// letters followed by two decimal digits and the letters name a country known
// to reg. A nil registry never matches.
func (i IBAN) BelongsToCountry(reg CountryRegistry) bool {
	if reg == nil {
		return false
	}
	digits := i.CheckDigits()
	if digits == "" || !isDigits(digits) {
		return false
	}
	code := i.CountryCode()
	if len(code) != 2 || !isLetters(code) {
		return false
	}
	return reg.Lookup(code)
}

// MarshalText implements encoding.TextMarshaler using the electronic form.
func (i IBAN) MarshalText() ([]byte, error) {
	return []byte(i.normalized), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and applies the same
// checks as New.
func (i *IBAN) UnmarshalText(text []byte) error {
	v, err := New(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }
