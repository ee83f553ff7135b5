package country

import "fmt"

// Supported registry sources.
const (
	SourceISO3166 = "iso3166"
	SourceCLDR    = "cldr"
)

// Registry resolves two-letter country codes.
type Registry interface {
	Lookup(code string) bool
}

// New returns the registry for source. An empty source selects ISO 3166-1.
func New(source string) (Registry, error) {
	switch source {
	case "", SourceISO3166:
		return ISO3166(), nil
	case SourceCLDR:
		return CLDR{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
}

// wellKnown are codes every registry must resolve.
var wellKnown = []string{"DE", "FR", "GB"}

// Check returns ErrRegistryUnavailable if reg cannot resolve well-known codes.
// It is meant for readiness probes.
func Check(reg Registry) error {
	if reg == nil {
		return ErrRegistryUnavailable
	}
	for _, code := range wellKnown {
		if !reg.Lookup(code) {
			return fmt.Errorf("%w: %s not found", ErrRegistryUnavailable, code)
		}
	}
	return nil
}
