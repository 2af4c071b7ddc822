package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/reelworks/rentaldesk-backend/internal/availability"
	"github.com/reelworks/rentaldesk-backend/internal/catalog"
	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
	"github.com/reelworks/rentaldesk-backend/pkg/pagination"
)

type stubCatalogService struct {
	page    *catalog.FilmPage
	buckets []catalog.CategoryBucket
	items   []catalog.LookupItem
	stores  []catalog.StoreView
	err     error

	lastFilters    catalog.SearchFilters
	lastCategories []string
	lastLimit      int
}

func (s *stubCatalogService) List(_ context.Context, _ pagination.Params) (*catalog.FilmPage, error) {
	return s.page, s.err
}

func (s *stubCatalogService) Search(_ context.Context, filters catalog.SearchFilters, _ pagination.Params) (*catalog.FilmPage, error) {
	s.lastFilters = filters
	return s.page, s.err
}

func (s *stubCatalogService) ByCategories(_ context.Context, categories []string, limit int) ([]catalog.CategoryBucket, error) {
	s.lastCategories = categories
	s.lastLimit = limit
	return s.buckets, s.err
}

func (s *stubCatalogService) Categories(_ context.Context) ([]catalog.LookupItem, error) {
	return s.items, s.err
}

func (s *stubCatalogService) Languages(_ context.Context) ([]catalog.LookupItem, error) {
	return s.items, s.err
}

func (s *stubCatalogService) Stores(_ context.Context) ([]catalog.StoreView, error) {
	return s.stores, s.err
}

type stubAvailabilitySvc struct {
	film    *availability.FilmAvailability
	check   *availability.CheckResult
	summary *availability.Summary
	err     error

	lastFilmID  uint
	lastStoreID *uint
	lastQuery   availability.CopyCountQuery
}

func (s *stubAvailabilitySvc) FilmAtStore(_ context.Context, filmID uint, storeID *uint) (*availability.FilmAvailability, error) {
	s.lastFilmID = filmID
	s.lastStoreID = storeID
	return s.film, s.err
}

func (s *stubAvailabilitySvc) Check(_ context.Context, _ []uint) (*availability.CheckResult, error) {
	return s.check, s.err
}

func (s *stubAvailabilitySvc) Summarize(_ context.Context, query availability.CopyCountQuery) (*availability.Summary, error) {
	s.lastQuery = query
	return s.summary, s.err
}

func TestFilmsSearchForwardsFilters(t *testing.T) {
	svc := &stubCatalogService{page: &catalog.FilmPage{Films: []catalog.FilmView{}}}
	handler := FilmsSearch(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/films/search?title=dino&category=Action&min_year=2004&max_year=2006&rating=PG", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastFilters.Title != "dino" || svc.lastFilters.Category != "Action" || svc.lastFilters.Rating != "PG" {
		t.Fatalf("unexpected filters: %+v", svc.lastFilters)
	}
	if svc.lastFilters.MinYear == nil || *svc.lastFilters.MinYear != 2004 {
		t.Fatalf("expected min_year 2004 got %v", svc.lastFilters.MinYear)
	}
	if svc.lastFilters.MaxYear == nil || *svc.lastFilters.MaxYear != 2006 {
		t.Fatalf("expected max_year 2006 got %v", svc.lastFilters.MaxYear)
	}
}

func TestFilmsSearchRejectsNonNumericYear(t *testing.T) {
	handler := FilmsSearch(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/films/search?min_year=old", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestFilmsByCategoriesForwardsLimit(t *testing.T) {
	svc := &stubCatalogService{buckets: []catalog.CategoryBucket{}}
	handler := FilmsByCategories(svc, nil)

	payload := []byte(`{"categories": ["Action", "Comedy"], "limit": 5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/films/by-categories", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if len(svc.lastCategories) != 2 || svc.lastLimit != 5 {
		t.Fatalf("unexpected call: categories=%v limit=%d", svc.lastCategories, svc.lastLimit)
	}
}

func TestFilmsByCategoriesRequiresNames(t *testing.T) {
	handler := FilmsByCategories(&stubCatalogService{}, nil)

	payload := []byte(`{"categories": []}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/films/by-categories", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func filmAvailabilityRequest(t *testing.T, handler http.HandlerFunc, filmID, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/films/"+filmID+"/availability"+query, nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("filmID", filmID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestFilmAvailabilitySuccess(t *testing.T) {
	svc := &stubAvailabilitySvc{film: &availability.FilmAvailability{
		FilmID:                1,
		FilmTitle:             "ACADEMY DINOSAUR",
		IsAvailable:           true,
		TotalCopies:           3,
		AvailableCopies:       2,
		RentedCopies:          1,
		AvailableInventoryIDs: []uint{1, 2},
		RentedInventoryIDs:    []uint{3},
	}}
	rec := filmAvailabilityRequest(t, FilmAvailability(svc, nil), "1", "?store_id=2")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastFilmID != 1 {
		t.Fatalf("expected film id 1 got %d", svc.lastFilmID)
	}
	if svc.lastStoreID == nil || *svc.lastStoreID != 2 {
		t.Fatalf("expected store filter 2 got %v", svc.lastStoreID)
	}
	var envelope struct {
		Data availability.FilmAvailability `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.IsAvailable || envelope.Data.AvailableCopies != 2 {
		t.Fatalf("unexpected availability: %+v", envelope.Data)
	}
}

func TestFilmAvailabilityUnknownFilm(t *testing.T) {
	svc := &stubAvailabilitySvc{err: pkgerrors.New(pkgerrors.CodeNotFound, "film not found")}
	rec := filmAvailabilityRequest(t, FilmAvailability(svc, nil), "99", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestFilmAvailabilityInvalidID(t *testing.T) {
	rec := filmAvailabilityRequest(t, FilmAvailability(&stubAvailabilitySvc{}, nil), "zero", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
