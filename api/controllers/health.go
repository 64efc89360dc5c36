package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/razorsharp/storefront-backend/api/responses"
	"github.com/razorsharp/storefront-backend/pkg/config"
	"github.com/razorsharp/storefront-backend/pkg/db"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
	"github.com/razorsharp/storefront-backend/pkg/logger"
	"github.com/razorsharp/storefront-backend/pkg/redis"
)

const readyCheckTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the backing services and fails fast when any is down.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, cache redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
		defer cancel()

		checks := map[string]string{}

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
			checks["database"] = "ok"
		}
		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
			checks["redis"] = "ok"
		}

		checks["status"] = "ready"
		responses.WriteSuccess(w, checks)
	}
}
