package controllers

import (
	"net/http"

	"github.com/reelworks/rentaldesk-backend/api/responses"
	"github.com/reelworks/rentaldesk-backend/api/validators"
	"github.com/reelworks/rentaldesk-backend/internal/rentals"
	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
	"github.com/reelworks/rentaldesk-backend/pkg/logger"
)

type createRentalRequest struct {
	CustomerID   uint   `json:"customer_id" validate:"required,min=1"`
	InventoryIDs []uint `json:"inventory_ids" validate:"required,min=1,dive,min=1"`
	StaffID      uint   `json:"staff_id" validate:"omitempty,min=1"`
}

// RentalsCreate opens rentals for the requested copies. Copies already
// out stay out; the response lists what was actually rented.
func RentalsCreate(svc rentals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rentals service unavailable"))
			return
		}

		var req createRentalRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Create(r.Context(), rentals.CreateInput{
			CustomerID:   req.CustomerID,
			InventoryIDs: req.InventoryIDs,
			StaffID:      req.StaffID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// RentalReturn closes an open rental.
func RentalReturn(svc rentals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rentals service unavailable"))
			return
		}

		rentalID, err := validators.ParsePathID(r, "rentalID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Return(r.Context(), rentalID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// RentalsList returns open rentals, optionally filtered by ?customer_id=.
func RentalsList(svc rentals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rentals service unavailable"))
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		customerID, err := validators.ParseOptionalQueryUint(r, "customer_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListActive(r.Context(), customerID, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// RentalsOverdue returns rentals open past the overdue threshold.
func RentalsOverdue(svc rentals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rentals service unavailable"))
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListOverdue(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}
