package catalog

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
	"github.com/reelworks/rentaldesk-backend/pkg/pagination"
)

// DefaultBucketLimit caps films per category bucket when none is requested.
const DefaultBucketLimit = 20

// Service serves the read-only film catalog and its lookup lists.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*FilmPage, error)
	Search(ctx context.Context, filters SearchFilters, params pagination.Params) (*FilmPage, error)
	ByCategories(ctx context.Context, categories []string, limit int) ([]CategoryBucket, error)
	Categories(ctx context.Context) ([]LookupItem, error)
	Languages(ctx context.Context) ([]LookupItem, error)
	Stores(ctx context.Context) ([]StoreView, error)
}

type service struct {
	repo Repository
}

// NewService builds the catalog service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*FilmPage, error) {
	return s.Search(ctx, SearchFilters{}, params)
}

func (s *service) Search(ctx context.Context, filters SearchFilters, params pagination.Params) (*FilmPage, error) {
	params = params.Normalize()
	films, total, err := s.repo.ListFilms(ctx, filters, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing films")
	}
	return &FilmPage{
		Meta:  pagination.MetaFor(params, total),
		Films: filmViews(films),
	}, nil
}

// ByCategories returns one bucket per requested category name, in request
// order. Unknown categories yield empty buckets rather than errors.
func (s *service) ByCategories(ctx context.Context, categories []string, limit int) ([]CategoryBucket, error) {
	cleaned := make([]string, 0, len(categories))
	seen := make(map[string]bool, len(categories))
	for _, category := range categories {
		category = strings.TrimSpace(category)
		if category == "" {
			continue
		}
		key := strings.ToLower(category)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, category)
	}
	if len(cleaned) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "categories are required")
	}
	if limit <= 0 || limit > pagination.MaxPageSize {
		limit = DefaultBucketLimit
	}

	buckets := make([]CategoryBucket, 0, len(cleaned))
	for _, category := range cleaned {
		films, err := s.repo.FilmsByCategory(ctx, category, limit)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing films by category")
		}
		buckets = append(buckets, CategoryBucket{Category: category, Films: filmViews(films)})
	}
	return buckets, nil
}

func (s *service) Categories(ctx context.Context) ([]LookupItem, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing categories")
	}
	out := make([]LookupItem, 0, len(categories))
	for _, category := range categories {
		out = append(out, LookupItem{ID: category.CategoryID, Name: category.Name})
	}
	return out, nil
}

func (s *service) Languages(ctx context.Context) ([]LookupItem, error) {
	languages, err := s.repo.Languages(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing languages")
	}
	out := make([]LookupItem, 0, len(languages))
	for _, language := range languages {
		out = append(out, LookupItem{ID: language.LanguageID, Name: strings.TrimSpace(language.Name)})
	}
	return out, nil
}

func (s *service) Stores(ctx context.Context) ([]StoreView, error) {
	stores, err := s.repo.Stores(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing stores")
	}
	out := make([]StoreView, 0, len(stores))
	for _, store := range stores {
		out = append(out, StoreView{StoreID: store.StoreID, ManagerStaffID: store.ManagerStaffID})
	}
	return out, nil
}
