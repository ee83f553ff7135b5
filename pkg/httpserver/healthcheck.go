package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/ibancheck/pkg/logger"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

type healthStatus struct {
	Status string `json:"status"`
}

func writeHealth(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(healthStatus{Status: status})
}

// HealthCheckHandler returns a handler usable for liveness and readiness probes.
//
//   - Without checks it always answers 200 {"status":"alive"}.
//   - With checks it runs each one against the request context and answers
//     200 {"status":"ready"}, or 503 {"status":"not_ready"} on the first failure.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			writeHealth(w, http.StatusOK, "alive")
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					logger.Error(err),
					logger.Component("healthcheck"),
				)
				writeHealth(w, http.StatusServiceUnavailable, "not_ready")
				return
			}
		}

		writeHealth(w, http.StatusOK, "ready")
	}
}
