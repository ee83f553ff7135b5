package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/ibancheck/handler"
	"github.com/dmitrymomot/ibancheck/modules/validation"
	"github.com/dmitrymomot/ibancheck/pkg/clientip"
	"github.com/dmitrymomot/ibancheck/pkg/country"
	"github.com/dmitrymomot/ibancheck/pkg/environment"
	"github.com/dmitrymomot/ibancheck/pkg/httpserver"
	"github.com/dmitrymomot/ibancheck/pkg/metrics"
	"github.com/dmitrymomot/ibancheck/pkg/requestid"
)

type routerDeps struct {
	env      environment.Environment
	log      *slog.Logger
	registry country.Registry
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

func newRouter(deps routerDeps) http.Handler {
	errorHandler := handler.NewErrorHandler(deps.log)

	svc := validation.NewService(deps.registry,
		validation.WithMetrics(deps.metrics),
		validation.WithLogger(deps.log),
		validation.WithErrorHandler(errorHandler),
	)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(deps.env),
		middleware.Recoverer,
	)

	r.Get("/", handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.RedirectWithCode("/hello", http.StatusFound)
	}))
	r.Get("/hello", handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Templ(helloPage("Hello there!"))
	}))

	r.Get("/healthz", httpserver.HealthCheckHandler(deps.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(deps.log, func(context.Context) error {
		return country.Check(deps.registry)
	}))
	if deps.gatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.gatherer))
	}

	r.Mount("/validate", svc.Handle())

	r.NotFound(handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}, handler.WithErrorHandler[handler.Context, struct{}](errorHandler)))
	r.MethodNotAllowed(handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrMethodNotAllowed)
	}, handler.WithErrorHandler[handler.Context, struct{}](errorHandler)))

	return r
}
