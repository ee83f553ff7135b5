package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// Query binds URL query parameters to fields tagged with `query:"name"`.
// Fields without a query tag are left untouched so Query can be combined
// with other binders. A request without a query string yields
// ErrBinderNotApplicable and leaves v unchanged.
//
// Supported field types: string, signed and unsigned integers, floats, bool,
// pointers to those (optional parameters) and slices (repeated or
// comma-separated parameters).
//
// Example:
//
//	type ValidateRequest struct {
//		Account string `query:"account"`
//	}
//
//	r.Get("/validate", handler.Wrap(h,
//		handler.WithBinders[handler.Context, ValidateRequest](binder.Query()),
//	))
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.URL.RawQuery == "" {
			return ErrBinderNotApplicable
		}

		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseQuery, err)
		}
		return bindToStruct(v, "query", values, ErrFailedToParseQuery)
	}
}
