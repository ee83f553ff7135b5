package validation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/ibancheck/handler"
	"github.com/dmitrymomot/ibancheck/pkg/iban"
	"github.com/dmitrymomot/ibancheck/pkg/logger"
	"github.com/dmitrymomot/ibancheck/pkg/metrics"
)

// Service validates account numbers against the IBAN rules and serves the
// /validate routes.
type Service struct {
	registry     iban.CountryRegistry
	metrics      *metrics.Metrics
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithMetrics records validation outcomes in m.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithErrorHandler overrides the error handler used by the HTTP routes.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) ServiceOption {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// NewService creates a validation service backed by registry.
// Without options it logs nothing and records no metrics.
func NewService(registry iban.CountryRegistry, opts ...ServiceOption) *Service {
	s := &Service{
		registry: registry,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("validation"))
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log)
	}
	return s
}

// Validate builds an IBAN from account and computes its verdict.
// Construction failures are returned as *iban.Error.
func (s *Service) Validate(ctx context.Context, account string) (Result, error) {
	start := time.Now()

	acc, err := iban.New(account)
	if err != nil {
		var ibanErr *iban.Error
		if errors.As(err, &ibanErr) {
			s.metrics.IncrementRejection(ibanErr.Kind.String())
		}
		return Result{}, err
	}

	res := Result{
		IBAN:         acc,
		Correct:      acc.IsCorrect(),
		KnownCountry: acc.BelongsToCountry(s.registry),
	}

	elapsed := time.Since(start)
	s.metrics.ObserveValidateLatency(elapsed)
	s.metrics.IncrementValidation(res.Correct, res.KnownCountry)

	s.log.InfoContext(ctx, "iban validated",
		logger.Account(acc.Electronic()),
		logger.Country(acc.CountryCode()),
		logger.Verdict(res.Correct),
		slog.Bool("known_country", res.KnownCountry),
		logger.Duration(elapsed),
	)

	return res, nil
}
