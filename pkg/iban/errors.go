package iban

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by *Error through errors.Is.
var (
	// ErrInvalidCharacters is returned when the input contains anything other than ASCII letters and digits.
	ErrInvalidCharacters = errors.New("iban: invalid characters")

	// ErrTooLong is returned when the input exceeds MaxLength characters.
	ErrTooLong = errors.New("iban: too long")
)

// ErrorKind identifies which construction invariant was violated.
type ErrorKind int

const (
	// InvalidCharacters means the input is not purely alphanumeric.
	InvalidCharacters ErrorKind = iota + 1
	// TooLong means the input is longer than MaxLength.
	TooLong
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacters:
		return "invalid_characters"
	case TooLong:
		return "too_long"
	default:
		return "unknown"
	}
}

// Error describes a failed construction. Account holds the offending input
// verbatim; Length is its character count and is only meaningful for TooLong.
type Error struct {
	Kind    ErrorKind
	Account string
	Length  int
}

// Error returns a diagnostic suitable for showing to API clients as-is.
func (e *Error) Error() string {
	switch e.Kind {
	case TooLong:
		return fmt.Sprintf("The IBAN account provided (%s) has %d characters and the maximum allowed is %d.",
			e.Account, e.Length, MaxLength)
	default:
		return fmt.Sprintf("The IBAN account provided (%s) contains non-alphanumeric characters.", e.Account)
	}
}

// Unwrap exposes the sentinel matching the error kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case InvalidCharacters:
		return ErrInvalidCharacters
	case TooLong:
		return ErrTooLong
	default:
		return nil
	}
}
