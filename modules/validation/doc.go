// Package validation serves IBAN validation over HTTP.
//
// Service.Validate builds an iban.IBAN from untrusted input and returns a
// Result whose JSON form maps the electronic IBAN to "OK" or "NOTOK".
// Service.Handle exposes it as GET /validate?account=...; POST is rejected
// with 405 until it is implemented, and every failure is rendered as
// {"error": "..."} by the handler package.
//
//	svc := validation.NewService(country.ISO3166(),
//		validation.WithMetrics(m),
//		validation.WithLogger(log),
//	)
//	r.Mount("/validate", svc.Handle())
package validation
