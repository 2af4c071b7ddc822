package controllers

import (
	"net/http"
	"strings"

	"github.com/reelworks/rentaldesk-backend/api/responses"
	"github.com/reelworks/rentaldesk-backend/api/validators"
	"github.com/reelworks/rentaldesk-backend/internal/availability"
	"github.com/reelworks/rentaldesk-backend/internal/catalog"
	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
	"github.com/reelworks/rentaldesk-backend/pkg/logger"
)

// FilmsList returns the paginated film catalog.
func FilmsList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// FilmsSearch filters the catalog. All provided dimensions must match.
func FilmsSearch(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		minYear, err := validators.ParseOptionalQueryInt(r, "min_year")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		maxYear, err := validators.ParseOptionalQueryInt(r, "max_year")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := catalog.SearchFilters{
			Title:    strings.TrimSpace(r.URL.Query().Get("title")),
			Category: strings.TrimSpace(r.URL.Query().Get("category")),
			MinYear:  minYear,
			MaxYear:  maxYear,
			Rating:   strings.TrimSpace(r.URL.Query().Get("rating")),
		}

		page, err := svc.Search(r.Context(), filters, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

type filmsByCategoriesRequest struct {
	Categories []string `json:"categories" validate:"required,min=1,dive,min=1"`
	Limit      int      `json:"limit" validate:"omitempty,min=1,max=100"`
}

// FilmsByCategories returns film buckets for the requested category names.
func FilmsByCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var req filmsByCategoriesRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		buckets, err := svc.ByCategories(r.Context(), req.Categories, req.Limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, buckets)
	}
}

// FilmAvailability reports the copy partition for one film, optionally
// scoped to a store via ?store_id=.
func FilmAvailability(svc availability.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "availability service unavailable"))
			return
		}

		filmID, err := validators.ParsePathID(r, "filmID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		storeID, err := validators.ParseOptionalQueryUint(r, "store_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.FilmAtStore(r.Context(), filmID, storeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
