package catalog

import (
	"github.com/reelworks/rentaldesk-backend/pkg/db/models"
	"github.com/reelworks/rentaldesk-backend/pkg/pagination"
	"github.com/shopspring/decimal"
)

// SearchFilters narrows a film search. All set dimensions must match; an
// unset dimension is ignored.
type SearchFilters struct {
	Title    string
	Category string
	MinYear  *int
	MaxYear  *int
	Rating   string
}

// Empty reports whether no filter dimension is set.
func (f SearchFilters) Empty() bool {
	return f.Title == "" && f.Category == "" && f.MinYear == nil && f.MaxYear == nil && f.Rating == ""
}

// FilmView is the catalog projection of a film.
type FilmView struct {
	FilmID      uint            `json:"film_id"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	ReleaseYear *int            `json:"release_year,omitempty"`
	Language    string          `json:"language"`
	RentalRate  decimal.Decimal `json:"rental_rate"`
	Length      *int            `json:"length,omitempty"`
	Rating      *string         `json:"rating,omitempty"`
	Categories  []string        `json:"categories"`
}

// FilmPage is one page of catalog films.
type FilmPage struct {
	pagination.Meta
	Films []FilmView `json:"films"`
}

// LookupItem is one row of a category or language lookup list.
type LookupItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// StoreView is the public projection of a store.
type StoreView struct {
	StoreID        uint `json:"store_id"`
	ManagerStaffID uint `json:"manager_staff_id"`
}

// CategoryBucket groups films under one requested category name.
type CategoryBucket struct {
	Category string     `json:"category"`
	Films    []FilmView `json:"films"`
}

func filmView(film models.Film) FilmView {
	view := FilmView{
		FilmID:      film.FilmID,
		Title:       film.Title,
		Description: film.Description,
		ReleaseYear: film.ReleaseYear,
		RentalRate:  film.RentalRate,
		Length:      film.Length,
		Rating:      film.Rating,
		Categories:  make([]string, 0, len(film.Categories)),
	}
	if film.Language != nil {
		view.Language = film.Language.Name
	}
	for _, category := range film.Categories {
		view.Categories = append(view.Categories, category.Name)
	}
	return view
}

func filmViews(films []models.Film) []FilmView {
	out := make([]FilmView, 0, len(films))
	for _, film := range films {
		out = append(out, filmView(film))
	}
	return out
}
