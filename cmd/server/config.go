package main

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/ibancheck/pkg/country"
	"github.com/dmitrymomot/ibancheck/pkg/httpserver"
	"github.com/dmitrymomot/ibancheck/pkg/logger"
)

var errUnknownRegistry = errors.New("unknown country registry")

// AppConfig is loaded from the environment by config.Load.
type AppConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Name            string `env:"APP_NAME" envDefault:"ibancheck"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	CountryRegistry string `env:"COUNTRY_REGISTRY" envDefault:"iso3166"`

	HTTP httpserver.Config
}

// Validate implements config.Validator.
func (c AppConfig) Validate() error {
	switch c.CountryRegistry {
	case country.SourceISO3166, country.SourceCLDR:
	default:
		return fmt.Errorf("%w: %q", errUnknownRegistry, c.CountryRegistry)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
