package catalog

import (
	"context"
	"testing"

	"github.com/reelworks/rentaldesk-backend/pkg/db/models"
	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
	"github.com/reelworks/rentaldesk-backend/pkg/pagination"
)

type stubCatalogRepo struct {
	films        []models.Film
	total        int64
	byCategory   map[string][]models.Film
	lastFilters  SearchFilters
	lastCategory string
	lastLimit    int
}

func (s *stubCatalogRepo) ListFilms(ctx context.Context, filters SearchFilters, params pagination.Params) ([]models.Film, int64, error) {
	s.lastFilters = filters
	return s.films, s.total, nil
}

func (s *stubCatalogRepo) FilmsByCategory(ctx context.Context, category string, limit int) ([]models.Film, error) {
	s.lastCategory = category
	s.lastLimit = limit
	return s.byCategory[category], nil
}

func (s *stubCatalogRepo) Categories(ctx context.Context) ([]models.Category, error) {
	return []models.Category{{CategoryID: 1, Name: "Action"}}, nil
}

func (s *stubCatalogRepo) Languages(ctx context.Context) ([]models.Language, error) {
	return []models.Language{{LanguageID: 1, Name: "English             "}}, nil
}

func (s *stubCatalogRepo) Stores(ctx context.Context) ([]models.Store, error) {
	return []models.Store{{StoreID: 1, ManagerStaffID: 1}}, nil
}

func TestSearchNormalizesPagination(t *testing.T) {
	repo := &stubCatalogRepo{total: 42}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	page, err := svc.Search(context.Background(), SearchFilters{Title: "agent"}, pagination.Params{Page: -1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.Page != 1 || page.PageSize != pagination.DefaultPageSize || page.Total != 42 {
		t.Fatalf("unexpected meta: %+v", page.Meta)
	}
	if repo.lastFilters.Title != "agent" {
		t.Fatalf("filters not forwarded: %+v", repo.lastFilters)
	}
}

func TestByCategoriesRequiresNames(t *testing.T) {
	svc, err := NewService(&stubCatalogRepo{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	_, err = svc.ByCategories(context.Background(), []string{" ", ""}, 5)
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected CodeValidation, got %v", err)
	}
}

func TestByCategoriesBucketsInRequestOrder(t *testing.T) {
	repo := &stubCatalogRepo{
		byCategory: map[string][]models.Film{
			"Comedy": {{FilmID: 2, Title: "ACE GOLDFINGER"}},
		},
	}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	buckets, err := svc.ByCategories(context.Background(), []string{"Comedy", "Action", "comedy"}, 5)
	if err != nil {
		t.Fatalf("ByCategories: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets after dedupe, got %d", len(buckets))
	}
	if buckets[0].Category != "Comedy" || len(buckets[0].Films) != 1 {
		t.Fatalf("unexpected first bucket: %+v", buckets[0])
	}
	if buckets[1].Category != "Action" || len(buckets[1].Films) != 0 {
		t.Fatalf("unknown category should yield an empty bucket: %+v", buckets[1])
	}
}

func TestByCategoriesDefaultsLimit(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if _, err := svc.ByCategories(context.Background(), []string{"Action"}, 0); err != nil {
		t.Fatalf("ByCategories: %v", err)
	}
	if repo.lastLimit != DefaultBucketLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultBucketLimit, repo.lastLimit)
	}
}

func TestLanguagesTrimPaddedNames(t *testing.T) {
	svc, err := NewService(&stubCatalogRepo{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	languages, err := svc.Languages(context.Background())
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if languages[0].Name != "English" {
		t.Fatalf("expected trimmed name, got %q", languages[0].Name)
	}
}
