package controllers

import (
	"context"
	"net/http"

	"github.com/onnuriprint/printshop-backend/api/responses"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(env string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Onnuri-Env", env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every backing dependency. Any failure turns the check
// into a 503 naming the dependency that failed.
func HealthReady(env string, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Onnuri-Env", env)

		checks := make(map[string]string, len(deps))
		var failed string
		for name, dep := range deps {
			if dep == nil {
				checks[name] = "skipped"
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				checks[name] = "down"
				failed = name
				if logg != nil {
					logg.Error(r.Context(), "health.dependency", err)
				}
				continue
			}
			checks[name] = "ok"
		}

		if failed != "" {
			err := pkgerrors.New(pkgerrors.CodeDependency, failed+" is unreachable").
				WithDetails(checks)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
