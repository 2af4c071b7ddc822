package controllers

import (
	"net/http"

	"github.com/reelworks/rentaldesk-backend/api/responses"
	"github.com/reelworks/rentaldesk-backend/api/validators"
	"github.com/reelworks/rentaldesk-backend/internal/accounts"
	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
	"github.com/reelworks/rentaldesk-backend/pkg/logger"
)

type signupRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=64"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"omitempty,max=45"`
	LastName  string `json:"last_name" validate:"omitempty,max=45"`
	StoreID   uint   `json:"store_id" validate:"omitempty,min=1"`
}

type loginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup registers a login identity together with its customer profile.
func Signup(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "accounts service unavailable"))
			return
		}

		var req signupRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		account, err := svc.Signup(r.Context(), accounts.SignupInput{
			Name:      req.Name,
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			StoreID:   req.StoreID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, account)
	}
}

// Login verifies credentials and returns the sanitized account profile.
func Login(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "accounts service unavailable"))
			return
		}

		var req loginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		account, err := svc.Login(r.Context(), accounts.LoginInput{
			Name:     req.Name,
			Password: req.Password,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, account)
	}
}
