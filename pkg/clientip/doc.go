// Package clientip resolves the address of the client behind a request and
// carries it on the request context for logging.
//
// The address is read from the first trusted proxy header that holds a valid
// IP (X-Forwarded-For, then X-Real-IP by default) and falls back to
// RemoteAddr. Only enable header lookup when the service runs behind a proxy
// that overwrites these headers.
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
