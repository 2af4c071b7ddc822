package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reelworks/rentaldesk-backend/internal/accounts"
	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
)

type stubAccountsService struct {
	account *accounts.Account
	err     error

	lastSignup accounts.SignupInput
	lastLogin  accounts.LoginInput
}

func (s *stubAccountsService) Signup(_ context.Context, input accounts.SignupInput) (*accounts.Account, error) {
	s.lastSignup = input
	return s.account, s.err
}

func (s *stubAccountsService) Login(_ context.Context, input accounts.LoginInput) (*accounts.Account, error) {
	s.lastLogin = input
	return s.account, s.err
}

func TestSignupReturnsCreated(t *testing.T) {
	svc := &stubAccountsService{account: &accounts.Account{UserID: 1, Name: "renter", Email: "renter@example.com"}}
	handler := Signup(svc, nil)

	payload := []byte(`{"name": "renter", "email": "renter@example.com", "password": "correct horse", "store_id": 1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if svc.lastSignup.StoreID != 1 {
		t.Fatalf("expected store id 1 got %d", svc.lastSignup.StoreID)
	}
	var envelope struct {
		Data accounts.Account `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Name != "renter" {
		t.Fatalf("expected name renter got %q", envelope.Data.Name)
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	handler := Signup(&stubAccountsService{}, nil)

	payload := []byte(`{"name": "renter", "email": "renter@example.com", "password": "short"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestSignupConflict(t *testing.T) {
	svc := &stubAccountsService{err: pkgerrors.New(pkgerrors.CodeConflict, "name or email already registered")}
	handler := Signup(svc, nil)

	payload := []byte(`{"name": "renter", "email": "renter@example.com", "password": "correct horse"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rec.Code)
	}
}

func TestLoginUnauthorized(t *testing.T) {
	svc := &stubAccountsService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}
	handler := Login(svc, nil)

	payload := []byte(`{"name": "renter", "password": "wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestLoginForwardsCredentials(t *testing.T) {
	svc := &stubAccountsService{account: &accounts.Account{UserID: 4, Name: "renter"}}
	handler := Login(svc, nil)

	payload := []byte(`{"name": "renter", "password": "correct horse"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastLogin.Name != "renter" || svc.lastLogin.Password != "correct horse" {
		t.Fatalf("unexpected login input: %+v", svc.lastLogin)
	}
}
