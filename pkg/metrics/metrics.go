// Package metrics defines the Prometheus collectors for IBAN validation.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides observability for the validation module.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Verdicts by outcome and whether the country code is known
	Validations *prometheus.CounterVec

	// Inputs rejected before validation, by error kind
	Rejections *prometheus.CounterVec

	ValidateLatency prometheus.Histogram
}

// New creates the collectors and registers them with reg. Passing nil
// registers with prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ibancheck_validations_total",
			Help: "Total IBAN validations by verdict and country recognition",
		}, []string{"verdict", "known_country"}), // verdict: "ok", "notok"

		Rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ibancheck_rejections_total",
			Help: "Total account numbers rejected at construction by error kind",
		}, []string{"kind"}), // kind: "invalid_characters", "too_long"

		ValidateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ibancheck_validate_duration_seconds",
			Help:    "Duration of a single IBAN validation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// IncrementValidation records a completed validation.
func (m *Metrics) IncrementValidation(correct, knownCountry bool) {
	if m == nil {
		return
	}
	verdict := "notok"
	if correct {
		verdict = "ok"
	}
	m.Validations.WithLabelValues(verdict, strconv.FormatBool(knownCountry)).Inc()
}

// IncrementRejection records an input that failed construction.
func (m *Metrics) IncrementRejection(kind string) {
	if m != nil {
		m.Rejections.WithLabelValues(kind).Inc()
	}
}

// ObserveValidateLatency records the duration of one validation.
func (m *Metrics) ObserveValidateLatency(d time.Duration) {
	if m != nil {
		m.ValidateLatency.Observe(d.Seconds())
	}
}

// Handler serves the text exposition format for g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
