package clientip

import "net/http"

// Option configures the middleware built by New.
type Option func(*options)

type options struct {
	headers []string
}

// WithHeaders replaces the proxy headers trusted for the client address.
// Pass no headers to use RemoteAddr only.
func WithHeaders(headers ...string) Option {
	return func(o *options) {
		o.headers = headers
	}
}

// New builds a middleware that stores the client address on the request
// context.
func New(opts ...Option) func(http.Handler) http.Handler {
	o := options{headers: DefaultHeaders}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), fromRequest(r, o.headers))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Middleware is New with default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}
