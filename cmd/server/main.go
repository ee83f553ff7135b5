// Command server runs the IBAN validation service.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/ibancheck/pkg/clientip"
	"github.com/dmitrymomot/ibancheck/pkg/config"
	"github.com/dmitrymomot/ibancheck/pkg/country"
	"github.com/dmitrymomot/ibancheck/pkg/environment"
	"github.com/dmitrymomot/ibancheck/pkg/httpserver"
	"github.com/dmitrymomot/ibancheck/pkg/logger"
	"github.com/dmitrymomot/ibancheck/pkg/metrics"
	"github.com/dmitrymomot/ibancheck/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg AppConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	// Validate already rejected unparseable levels.
	level, _ := logger.ParseLevel(cfg.LogLevel)
	env := environment.Parse(cfg.Env)

	log := logger.New(
		logger.WithEnvironment(env, cfg.Name),
		logger.WithLevel(level),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	registry, err := country.New(cfg.CountryRegistry)
	if err != nil {
		return err
	}
	if err := country.Check(registry); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := newRouter(routerDeps{
		env:      env,
		log:      log,
		registry: registry,
		metrics:  metrics.New(reg),
		gatherer: reg,
	})

	log.Info("starting ibancheck",
		slog.String("env", env.String()),
		slog.String("country_registry", cfg.CountryRegistry),
	)

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
}
