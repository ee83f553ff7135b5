// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle logging and health-check handlers.
//
// Run binds the listener, invokes start hooks, then serves until the
// context is cancelled, SIGINT/SIGTERM arrives, or Shutdown is called.
// Shutdown drains in-flight requests for at most the shutdown timeout and
// then invokes stop hooks.
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, checkRegistry))
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Config carries env tags (HTTP_ADDR, HTTP_READ_TIMEOUT, ...) for loading
// with pkg/config. Listen failures are wrapped with ErrStart and shutdown
// failures with ErrShutdown.
package httpserver
