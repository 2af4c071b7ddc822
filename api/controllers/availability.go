package controllers

import (
	"net/http"
	"strings"

	"github.com/reelworks/rentaldesk-backend/api/responses"
	"github.com/reelworks/rentaldesk-backend/api/validators"
	"github.com/reelworks/rentaldesk-backend/internal/availability"
	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
	"github.com/reelworks/rentaldesk-backend/pkg/logger"
)

type availabilityCheckRequest struct {
	InventoryIDs []uint `json:"inventory_ids" validate:"required,min=1,dive,min=1"`
}

// AvailabilityCheck reports the live rental state for specific copies.
func AvailabilityCheck(svc availability.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "availability service unavailable"))
			return
		}

		var req availabilityCheckRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Check(r.Context(), req.InventoryIDs)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// InventorySummary returns copy counts grouped by film, store, or both.
func InventorySummary(svc availability.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "availability service unavailable"))
			return
		}

		filmID, err := validators.ParseOptionalQueryUint(r, "film_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		storeID, err := validators.ParseOptionalQueryUint(r, "store_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := availability.CopyCountQuery{
			FilmID:  filmID,
			StoreID: storeID,
			GroupBy: availability.GroupBy(strings.TrimSpace(r.URL.Query().Get("group_by"))),
		}

		summary, err := svc.Summarize(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}
