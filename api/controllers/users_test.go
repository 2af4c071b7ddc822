package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/reelworks/rentaldesk-backend/internal/users"
	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
	"github.com/reelworks/rentaldesk-backend/pkg/pagination"
)

type stubUsersService struct {
	page *users.UserPage
	view *users.UserView
	err  error

	lastID     uint
	lastUpdate users.UpdateInput
}

func (s *stubUsersService) List(_ context.Context, _ pagination.Params) (*users.UserPage, error) {
	return s.page, s.err
}

func (s *stubUsersService) GetByID(_ context.Context, id uint) (*users.UserView, error) {
	s.lastID = id
	return s.view, s.err
}

func (s *stubUsersService) Update(_ context.Context, id uint, input users.UpdateInput) (*users.UserView, error) {
	s.lastID = id
	s.lastUpdate = input
	return s.view, s.err
}

func userRequest(t *testing.T, handler http.HandlerFunc, method, userID string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, "/api/v1/users/"+userID, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, "/api/v1/users/"+userID, nil)
	}
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("userID", userID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestUsersListReturnsPage(t *testing.T) {
	svc := &stubUsersService{page: &users.UserPage{
		Meta:  pagination.Meta{Page: 1, PageSize: 20, Total: 1},
		Users: []users.UserView{{ID: 1, Name: "renter"}},
	}}
	handler := UsersList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data users.UserPage `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Users) != 1 || envelope.Data.Users[0].Name != "renter" {
		t.Fatalf("unexpected page: %+v", envelope.Data)
	}
}

func TestUserGetNotFound(t *testing.T) {
	svc := &stubUsersService{err: pkgerrors.New(pkgerrors.CodeNotFound, "user not found")}
	rec := userRequest(t, UserGet(svc, nil), http.MethodGet, "42", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	if svc.lastID != 42 {
		t.Fatalf("expected id 42 got %d", svc.lastID)
	}
}

func TestUserUpdateForwardsFields(t *testing.T) {
	svc := &stubUsersService{view: &users.UserView{ID: 7, Name: "renamed"}}
	payload := []byte(`{"name": "renamed", "email": "renamed@example.com"}`)
	rec := userRequest(t, UserUpdate(svc, nil), http.MethodPut, "7", payload)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastUpdate.Name == nil || *svc.lastUpdate.Name != "renamed" {
		t.Fatalf("expected name update got %v", svc.lastUpdate.Name)
	}
	if svc.lastUpdate.Email == nil || *svc.lastUpdate.Email != "renamed@example.com" {
		t.Fatalf("expected email update got %v", svc.lastUpdate.Email)
	}
	if svc.lastUpdate.Password != nil {
		t.Fatalf("expected no password update got %v", svc.lastUpdate.Password)
	}
}

func TestUserUpdateRejectsBadEmail(t *testing.T) {
	rec := userRequest(t, UserUpdate(&stubUsersService{}, nil), http.MethodPut, "7", []byte(`{"email": "nope"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestUserUpdateConflict(t *testing.T) {
	svc := &stubUsersService{err: pkgerrors.New(pkgerrors.CodeConflict, "name already taken")}
	rec := userRequest(t, UserUpdate(svc, nil), http.MethodPut, "7", []byte(`{"name": "taken"}`))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rec.Code)
	}
}
