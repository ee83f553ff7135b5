// Package logger builds slog loggers with consistent defaults and attribute
// names across the service.
//
// New applies functional options on top of a JSON/INFO/stdout default and
// wraps the handler in LogHandlerDecorator, which appends attributes pulled
// from the record's context on every call. Register request-scoped values
// with WithContextExtractors:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "ibancheck"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        environment.LoggerExtractor(),
//	    ),
//	)
//	log.InfoContext(ctx, "iban validated",
//	    logger.Account(account),
//	    logger.Country("GB"),
//	    logger.Verdict(true),
//	)
//
// Attribute helpers in attr.go keep keys uniform; helpers for optional
// values return an empty slog.Attr, which slog drops.
package logger
