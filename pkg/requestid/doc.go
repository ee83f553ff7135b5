// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header from the client
// (letters, digits, '-' and '_', at most 128 characters) or generates a
// UUIDv7. The id is stored on the request context, echoed in the response
// header, and exposed to slog through LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
//
//	id := requestid.FromContext(r.Context())
//
// New accepts options for a different header name or id generator.
package requestid
