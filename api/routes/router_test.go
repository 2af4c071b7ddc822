package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/reelworks/rentaldesk-backend/internal/catalog"
	"github.com/reelworks/rentaldesk-backend/pkg/config"
	"github.com/reelworks/rentaldesk-backend/pkg/logger"
	"github.com/reelworks/rentaldesk-backend/pkg/pagination"
)

type stubCatalog struct{}

func (stubCatalog) List(context.Context, pagination.Params) (*catalog.FilmPage, error) {
	return &catalog.FilmPage{Films: []catalog.FilmView{}}, nil
}

func (stubCatalog) Search(context.Context, catalog.SearchFilters, pagination.Params) (*catalog.FilmPage, error) {
	return &catalog.FilmPage{Films: []catalog.FilmView{}}, nil
}

func (stubCatalog) ByCategories(context.Context, []string, int) ([]catalog.CategoryBucket, error) {
	return nil, nil
}

func (stubCatalog) Categories(context.Context) ([]catalog.LookupItem, error) {
	return []catalog.LookupItem{{ID: 1, Name: "Action"}}, nil
}

func (stubCatalog) Languages(context.Context) ([]catalog.LookupItem, error) {
	return nil, nil
}

func (stubCatalog) Stores(context.Context) ([]catalog.StoreView, error) {
	return nil, nil
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.HTTP.RequestTimeout = 5 * time.Second
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("error")})

	return NewRouter(cfg, logg, nil, nil, nil, nil, nil, stubCatalog{}, nil, nil, nil)
}

func TestRouterHealthLive(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if env := rec.Header().Get("X-RentalDesk-Env"); env != "test" {
		t.Fatalf("expected env header test got %q", env)
	}
}

func TestRouterDispatchesCatalog(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestRouterUnwiredServiceIsInternalError(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}

func TestRouterUnknownRouteIs404(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
