package validation_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ibancheck/modules/validation"
	"github.com/dmitrymomot/ibancheck/pkg/country"
	"github.com/dmitrymomot/ibancheck/pkg/iban"
	"github.com/dmitrymomot/ibancheck/pkg/metrics"
)

func TestService_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		account      string
		correct      bool
		knownCountry bool
	}{
		{"monaco", "MC793903645089C80JGA29MY747", true, true},
		{"luxembourg", "LU608781YS8E20B1G520", true, true},
		{"lowercase input", "gb82west12345698765432", true, true},
		{"unknown country", "QQ29VHAV322929767755897869423", false, false},
		{"unknown country with bank code", "GZ96BARC20038445256154", false, false},
		{"mismatched check digits", "NI52DYVJ256334521639641427629454", false, true},
	}

	svc := validation.NewService(country.ISO3166())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := svc.Validate(context.Background(), tt.account)
			require.NoError(t, err)
			assert.Equal(t, tt.correct, res.Correct)
			assert.Equal(t, tt.knownCountry, res.KnownCountry)
		})
	}
}

func TestService_Validate_ConstructionErrors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc := validation.NewService(country.ISO3166(), validation.WithMetrics(m))

	_, err := svc.Validate(context.Background(), "GB82-WEST")
	require.ErrorIs(t, err, iban.ErrInvalidCharacters)

	_, err = svc.Validate(context.Background(), "GB8212345678901234567890123456789012")
	require.ErrorIs(t, err, iban.ErrTooLong)

	var ibanErr *iban.Error
	require.ErrorAs(t, err, &ibanErr)
	assert.Equal(t, 36, ibanErr.Length)

	assert.InDelta(t, 1, testutil.ToFloat64(m.Rejections.WithLabelValues("invalid_characters")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Rejections.WithLabelValues("too_long")), 0)
}

func TestService_Validate_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc := validation.NewService(country.ISO3166(), validation.WithMetrics(m))

	for _, account := range []string{
		"MC793903645089C80JGA29MY747",
		"LU608781YS8E20B1G520",
		"QQ29VHAV322929767755897869423",
	} {
		_, err := svc.Validate(context.Background(), account)
		require.NoError(t, err)
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.Validations.WithLabelValues("ok", "true")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Validations.WithLabelValues("notok", "false")), 0)

	count, err := testutil.GatherAndCount(reg, "ibancheck_validate_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_Validate_Logs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	svc := validation.NewService(country.ISO3166(), validation.WithLogger(log))

	_, err := svc.Validate(context.Background(), "mc793903645089c80jga29my747")
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "iban validated", entry["msg"])
	assert.Equal(t, "validation", entry["component"])
	assert.Equal(t, "MC", entry["country"])
	assert.Equal(t, "OK", entry["verdict"])
	assert.Equal(t, true, entry["known_country"])
}

func TestService_Validate_NilRegistry(t *testing.T) {
	t.Parallel()

	svc := validation.NewService(nil)

	res, err := svc.Validate(context.Background(), "MC793903645089C80JGA29MY747")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.False(t, res.KnownCountry)
}
