// Package config loads application configuration from environment variables.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct tag parsing:
//
//	type AppConfig struct {
//		Env             string `env:"APP_ENV" envDefault:"development"`
//		CountryRegistry string `env:"COUNTRY_REGISTRY" envDefault:"iso3166"`
//		HTTP            httpserver.Config
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Load caches the parsed value per type for the life of the process; Parse
// skips the cache. Structs implementing Validator are checked after parsing
// and failures wrap ErrInvalidConfig. Variables already set in the process
// environment take precedence over .env files.
package config
