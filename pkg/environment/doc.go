// Package environment propagates the application environment (development,
// staging, production) through context.Context, HTTP requests and logs.
//
// Parse normalizes a configured value. Middleware stores the environment on
// every request context, FromContext and the Is* predicates read it back,
// and LoggerExtractor exposes it to logger.WithContextExtractors as the
// "env" attribute.
//
//	env := environment.Parse(cfg.Env)
//	r.Use(environment.Middleware(env))
package environment
