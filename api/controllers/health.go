package controllers

import (
	"net/http"

	"github.com/reelworks/rentaldesk-backend/api/responses"
	"github.com/reelworks/rentaldesk-backend/pkg/config"
	"github.com/reelworks/rentaldesk-backend/pkg/db"
	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
	"github.com/reelworks/rentaldesk-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RentalDesk-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the database connection before reporting ready.
func HealthReady(cfg *config.Config, dbClient *db.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RentalDesk-Env", cfg.App.Env)
		if dbClient != nil {
			if err := dbClient.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database ping"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
