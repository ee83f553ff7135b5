package country_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ibancheck/pkg/country"
	"github.com/dmitrymomot/ibancheck/pkg/iban"
)

var (
	_ iban.CountryRegistry = (*country.Table)(nil)
	_ iban.CountryRegistry = country.CLDR{}
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, source := range []string{"", country.SourceISO3166} {
		reg, err := country.New(source)
		require.NoError(t, err)
		assert.IsType(t, &country.Table{}, reg)
	}

	reg, err := country.New(country.SourceCLDR)
	require.NoError(t, err)
	assert.IsType(t, country.CLDR{}, reg)

	_, err = country.New("pycountry")
	assert.ErrorIs(t, err, country.ErrUnknownSource)
}

func TestCLDR(t *testing.T) {
	t.Parallel()

	reg := country.CLDR{}
	for _, code := range []string{"DE", "de", "MC", "LU", "GB"} {
		assert.True(t, reg.Lookup(code), "expected %s to be a country", code)
	}
	for _, code := range []string{"GZ", "ZZ", "", "D", "DEU", "1A"} {
		assert.False(t, reg.Lookup(code), "expected %q not to be a country", code)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	assert.NoError(t, country.Check(country.ISO3166()))
	assert.NoError(t, country.Check(country.CLDR{}))
	assert.ErrorIs(t, country.Check(nil), country.ErrRegistryUnavailable)

	empty, err := country.NewTable(nil)
	require.NoError(t, err)
	assert.ErrorIs(t, country.Check(empty), country.ErrRegistryUnavailable)
}

func TestRegistryWithIBAN(t *testing.T) {
	t.Parallel()

	for _, source := range []string{country.SourceISO3166, country.SourceCLDR} {
		reg, err := country.New(source)
		require.NoError(t, err)

		assert.True(t, iban.MustNew("MC793903645089C80JGA29MY747").BelongsToCountry(reg), source)
		assert.False(t, iban.MustNew("GZ96BARC20038445256154").BelongsToCountry(reg), source)
	}
}
