package availability

import (
	"context"

	"github.com/reelworks/rentaldesk-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository answers read-only availability questions. Every query derives
// copy state from the absence of an open rental row, never from a mutable
// status column.
type Repository interface {
	FilmExists(ctx context.Context, filmID uint) (bool, error)
	StoreExists(ctx context.Context, storeID uint) (bool, error)
	CopiesForFilm(ctx context.Context, filmID uint, storeID *uint) ([]CopyStatus, error)
	CopiesByInventoryIDs(ctx context.Context, inventoryIDs []uint) ([]CopyStatus, error)
	Summarize(ctx context.Context, query CopyCountQuery) ([]SummaryRow, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an availability repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FilmExists(ctx context.Context, filmID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Film{}).
		Where("film_id = ?", filmID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) StoreExists(ctx context.Context, storeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Store{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type copyRow struct {
	InventoryID uint
	FilmID      uint
	FilmTitle   string
	StoreID     uint
	RentalID    *uint
	CustomerID  *uint
}

func (row copyRow) status() CopyStatus {
	return CopyStatus{
		InventoryID: row.InventoryID,
		FilmID:      row.FilmID,
		FilmTitle:   row.FilmTitle,
		StoreID:     row.StoreID,
		Available:   row.RentalID == nil,
		RentalID:    row.RentalID,
		CustomerID:  row.CustomerID,
	}
}

// copyQuery left-joins the open rental, if any, onto each inventory copy.
func (r *repository) copyQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("inventory").
		Select(`inventory.inventory_id, inventory.film_id, film.title AS film_title,
			inventory.store_id, rental.rental_id, rental.customer_id`).
		Joins("JOIN film ON film.film_id = inventory.film_id").
		Joins("LEFT JOIN rental ON rental.inventory_id = inventory.inventory_id AND rental.return_date IS NULL")
}

func (r *repository) CopiesForFilm(ctx context.Context, filmID uint, storeID *uint) ([]CopyStatus, error) {
	query := r.copyQuery(ctx).Where("inventory.film_id = ?", filmID)
	if storeID != nil {
		query = query.Where("inventory.store_id = ?", *storeID)
	}

	var rows []copyRow
	if err := query.Order("inventory.inventory_id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return statuses(rows), nil
}

func (r *repository) CopiesByInventoryIDs(ctx context.Context, inventoryIDs []uint) ([]CopyStatus, error) {
	if len(inventoryIDs) == 0 {
		return nil, nil
	}
	var rows []copyRow
	err := r.copyQuery(ctx).
		Where("inventory.inventory_id IN ?", inventoryIDs).
		Order("inventory.inventory_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return statuses(rows), nil
}

type summaryRow struct {
	FilmID          *uint
	FilmTitle       *string
	StoreID         *uint
	TotalCopies     int
	AvailableCopies int
}

func (r *repository) Summarize(ctx context.Context, q CopyCountQuery) ([]SummaryRow, error) {
	query := r.db.WithContext(ctx).
		Table("inventory").
		Joins("LEFT JOIN rental ON rental.inventory_id = inventory.inventory_id AND rental.return_date IS NULL")
	if q.FilmID != nil {
		query = query.Where("inventory.film_id = ?", *q.FilmID)
	}
	if q.StoreID != nil {
		query = query.Where("inventory.store_id = ?", *q.StoreID)
	}

	const counts = `COUNT(inventory.inventory_id) AS total_copies,
		SUM(CASE WHEN rental.rental_id IS NULL THEN 1 ELSE 0 END) AS available_copies`

	switch q.GroupBy {
	case GroupByFilm:
		query = query.
			Select("inventory.film_id, film.title AS film_title, " + counts).
			Joins("JOIN film ON film.film_id = inventory.film_id").
			Group("inventory.film_id, film.title").
			Order("inventory.film_id ASC")
	case GroupByStore:
		query = query.
			Select("inventory.store_id, " + counts).
			Group("inventory.store_id").
			Order("inventory.store_id ASC")
	case GroupByFilmStore:
		query = query.
			Select("inventory.film_id, film.title AS film_title, inventory.store_id, " + counts).
			Joins("JOIN film ON film.film_id = inventory.film_id").
			Group("inventory.film_id, film.title, inventory.store_id").
			Order("inventory.film_id ASC, inventory.store_id ASC")
	default:
		query = query.
			Select("inventory.film_id, film.title AS film_title, " + counts).
			Joins("JOIN film ON film.film_id = inventory.film_id").
			Group("inventory.film_id, film.title").
			Order("inventory.film_id ASC")
	}

	var rows []summaryRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]SummaryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, SummaryRow{
			FilmID:          row.FilmID,
			FilmTitle:       row.FilmTitle,
			StoreID:         row.StoreID,
			TotalCopies:     row.TotalCopies,
			AvailableCopies: row.AvailableCopies,
			RentedCopies:    row.TotalCopies - row.AvailableCopies,
		})
	}
	return out, nil
}

func statuses(rows []copyRow) []CopyStatus {
	out := make([]CopyStatus, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.status())
	}
	return out
}
