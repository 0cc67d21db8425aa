package controllers

import (
	"context"
	"net/http"

	"github.com/adamolayo/vatcart-backend/api/responses"
	"github.com/adamolayo/vatcart-backend/pkg/config"
	pkgerrors "github.com/adamolayo/vatcart-backend/pkg/errors"
	"github.com/adamolayo/vatcart-backend/pkg/logger"
)

// Pinger is the health-check surface of an optional backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NamedPinger pairs a dependency with its report label.
type NamedPinger struct {
	Name   string
	Pinger Pinger
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Vatcart-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings each wired dependency; the file driver wires none.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps ...NamedPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Vatcart-Env", cfg.App.Env)

		for _, dep := range deps {
			if dep.Pinger == nil {
				continue
			}
			if err := dep.Pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, dep.Name+" unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
