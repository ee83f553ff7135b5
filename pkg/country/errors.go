package country

import "errors"

var (
	// ErrInvalidData is returned when a registry document cannot be decoded.
	ErrInvalidData = errors.New("country: invalid registry data")

	// ErrInvalidCode is returned when a registry entry carries a malformed alpha-2 code.
	ErrInvalidCode = errors.New("country: invalid alpha-2 code")

	// ErrDuplicateCode is returned when a registry document lists the same code twice.
	ErrDuplicateCode = errors.New("country: duplicate code")

	// ErrUnknownSource is returned by New for an unsupported registry source.
	ErrUnknownSource = errors.New("country: unknown registry source")

	// ErrRegistryUnavailable is returned by Check when a registry cannot resolve well-known codes.
	ErrRegistryUnavailable = errors.New("country: registry unavailable")
)
