// Package binder binds HTTP request data to Go structs.
//
// A binder is a func(*http.Request, any) error that fills the struct pointed
// to by its second argument. Binders only touch fields carrying their own
// struct tag, so several can be chained through handler.WithBinders.
//
//	type ValidateRequest struct {
//	    Account string `query:"account"`
//	    Verbose *bool  `query:"verbose"`
//	}
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, ValidateRequest](binder.Query()))
//
// Missing parameters leave fields at their zero value; required-ness is a
// validation concern (see package validator). Conversion failures are
// wrapped in ErrFailedToParseQuery, and a target that is not a non-nil
// pointer to struct yields ErrInvalidTarget.
package binder
