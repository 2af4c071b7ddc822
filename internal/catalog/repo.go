package catalog

import (
	"context"

	"github.com/reelworks/rentaldesk-backend/pkg/db/models"
	"github.com/reelworks/rentaldesk-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository owns the catalog read queries. Filter clauses are fixed and
// parameterized; nothing from the request reaches the SQL as an identifier.
type Repository interface {
	ListFilms(ctx context.Context, filters SearchFilters, params pagination.Params) ([]models.Film, int64, error)
	FilmsByCategory(ctx context.Context, category string, limit int) ([]models.Film, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Languages(ctx context.Context) ([]models.Language, error)
	Stores(ctx context.Context) ([]models.Store, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func applyFilmFilters(query *gorm.DB, filters SearchFilters) *gorm.DB {
	if filters.Title != "" {
		query = query.Where("LOWER(film.title) LIKE LOWER(?)", "%"+filters.Title+"%")
	}
	if filters.Category != "" {
		query = query.
			Joins("JOIN film_category fc ON fc.film_id = film.film_id").
			Joins("JOIN category c ON c.category_id = fc.category_id").
			Where("LOWER(c.name) = LOWER(?)", filters.Category)
	}
	if filters.MinYear != nil {
		query = query.Where("film.release_year >= ?", *filters.MinYear)
	}
	if filters.MaxYear != nil {
		query = query.Where("film.release_year <= ?", *filters.MaxYear)
	}
	if filters.Rating != "" {
		query = query.Where("film.rating = ?", filters.Rating)
	}
	return query
}

func (r *repository) ListFilms(ctx context.Context, filters SearchFilters, params pagination.Params) ([]models.Film, int64, error) {
	var total int64
	countQuery := applyFilmFilters(r.db.WithContext(ctx).Model(&models.Film{}), filters)
	if err := countQuery.Distinct("film.film_id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var films []models.Film
	query := applyFilmFilters(r.db.WithContext(ctx).Model(&models.Film{}), filters).
		Preload("Categories").
		Preload("Language").
		Distinct("film.*").
		Order("film.film_id ASC").
		Limit(params.Limit()).
		Offset(params.Offset())
	if err := query.Find(&films).Error; err != nil {
		return nil, 0, err
	}
	return films, total, nil
}

func (r *repository) FilmsByCategory(ctx context.Context, category string, limit int) ([]models.Film, error) {
	var films []models.Film
	err := r.db.WithContext(ctx).
		Model(&models.Film{}).
		Preload("Categories").
		Preload("Language").
		Joins("JOIN film_category fc ON fc.film_id = film.film_id").
		Joins("JOIN category c ON c.category_id = fc.category_id").
		Where("LOWER(c.name) = LOWER(?)", category).
		Order("film.film_id ASC").
		Limit(limit).
		Find(&films).Error
	if err != nil {
		return nil, err
	}
	return films, nil
}

func (r *repository) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *repository) Languages(ctx context.Context) ([]models.Language, error) {
	var languages []models.Language
	err := r.db.WithContext(ctx).Order("name ASC").Find(&languages).Error
	return languages, err
}

func (r *repository) Stores(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	err := r.db.WithContext(ctx).Order("store_id ASC").Find(&stores).Error
	return stores, err
}
