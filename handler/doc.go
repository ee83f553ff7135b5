// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value R that has been
// populated by the configured binders, and returns a Response. Wrap turns
// it into an http.HandlerFunc:
//
//	type ValidateRequest struct {
//		Account string `query:"account"`
//	}
//
//	h := func(ctx handler.Context, req ValidateRequest) handler.Response {
//		return handler.JSON(map[string]string{"account": req.Account})
//	}
//
//	r.Get("/validate", handler.Wrap(h,
//		handler.WithBinders[handler.Context, ValidateRequest](binder.Query()),
//		handler.WithErrorHandler[handler.Context, ValidateRequest](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
// JSON writes any value as the body. JSONError renders the error envelope
// {"error": "..."} with a status derived from the error:
//
//   - HTTPError: its own code and message
//   - validator.ValidationErrors: 400 with the joined rule messages
//   - *iban.Error: 400 with the construction diagnostic
//   - binder.ErrFailedToParseQuery: 400
//   - anything else: 500 with a generic message
//
// Error defers to the route's ErrorHandler instead of rendering directly.
// Redirect, RedirectWithCode and Templ cover redirects and HTML pages.
//
// # Errors
//
// Binding failures, nil responses (ErrNilResponse) and render failures are
// routed to the ErrorHandler. NewErrorHandler logs them through slog with
// the request id and renders the JSON envelope.
package handler
