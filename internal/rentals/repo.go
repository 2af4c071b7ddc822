package rentals

import (
	"context"
	"strings"
	"time"

	"github.com/reelworks/rentaldesk-backend/pkg/db/models"
	"github.com/reelworks/rentaldesk-backend/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a rentals repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CustomerExists(ctx context.Context, customerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) StaffExists(ctx context.Context, staffID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Staff{}).
		Where("staff_id = ?", staffID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ExistingInventory(ctx context.Context, inventoryIDs []uint) (map[uint]bool, error) {
	existing := make(map[uint]bool, len(inventoryIDs))
	if len(inventoryIDs) == 0 {
		return existing, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Inventory{}).
		Where("inventory_id IN ?", inventoryIDs).
		Pluck("inventory_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		existing[id] = true
	}
	return existing, nil
}

// InsertOpenRental attempts the insert under the partial unique index on
// open rentals. A conflict means the copy is already out; the caller sees
// that as inserted=false rather than an error.
func (r *repository) InsertOpenRental(ctx context.Context, rental *models.Rental) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rental)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) FindByID(ctx context.Context, rentalID uint) (*models.Rental, error) {
	var rental models.Rental
	err := r.db.WithContext(ctx).
		Where("rental_id = ?", rentalID).
		First(&rental).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// CloseRental stamps the return date only while the rental is still open.
// Zero rows affected means another request already closed it.
func (r *repository) CloseRental(ctx context.Context, rentalID uint, returnedAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Rental{}).
		Where("rental_id = ? AND return_date IS NULL", rentalID).
		Update("return_date", returnedAt)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type rentalRow struct {
	RentalID    uint
	InventoryID uint
	FilmID      uint
	FilmTitle   string
	StoreID     uint
	CustomerID  uint
	FirstName   string
	LastName    string
	StaffID     uint
	RentalDate  time.Time
	ReturnDate  *time.Time
}

func (row rentalRow) summary() RentalSummary {
	name := strings.TrimSpace(row.FirstName + " " + row.LastName)
	return RentalSummary{
		RentalID:     row.RentalID,
		InventoryID:  row.InventoryID,
		FilmID:       row.FilmID,
		FilmTitle:    row.FilmTitle,
		StoreID:      row.StoreID,
		CustomerID:   row.CustomerID,
		CustomerName: name,
		StaffID:      row.StaffID,
		RentalDate:   row.RentalDate,
		ReturnDate:   row.ReturnDate,
	}
}

func (r *repository) summaryQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("rental").
		Select(`rental.rental_id, rental.inventory_id, film.film_id, film.title AS film_title,
			inventory.store_id, rental.customer_id, customer.first_name, customer.last_name,
			rental.staff_id, rental.rental_date, rental.return_date`).
		Joins("JOIN inventory ON inventory.inventory_id = rental.inventory_id").
		Joins("JOIN film ON film.film_id = inventory.film_id").
		Joins("JOIN customer ON customer.customer_id = rental.customer_id")
}

func (r *repository) FindSummary(ctx context.Context, rentalID uint) (*RentalSummary, error) {
	var row rentalRow
	err := r.summaryQuery(ctx).
		Where("rental.rental_id = ?", rentalID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	summary := row.summary()
	return &summary, nil
}

func (r *repository) FindSummaries(ctx context.Context, rentalIDs []uint) ([]RentalSummary, error) {
	if len(rentalIDs) == 0 {
		return nil, nil
	}
	var rows []rentalRow
	err := r.summaryQuery(ctx).
		Where("rental.rental_id IN ?", rentalIDs).
		Order("rental.rental_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return summaries(rows), nil
}

func (r *repository) ListActive(ctx context.Context, customerID *uint, params pagination.Params) ([]RentalSummary, int64, error) {
	query := r.summaryQuery(ctx).Where("rental.return_date IS NULL")
	countQuery := r.db.WithContext(ctx).
		Model(&models.Rental{}).
		Where("return_date IS NULL")
	if customerID != nil {
		query = query.Where("rental.customer_id = ?", *customerID)
		countQuery = countQuery.Where("customer_id = ?", *customerID)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []rentalRow
	err := query.
		Order("rental.rental_date DESC, rental.rental_id DESC").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return summaries(rows), total, nil
}

// ListOpenBefore returns open rentals whose rental date precedes the cutoff,
// oldest first so the most overdue surface on the first page.
func (r *repository) ListOpenBefore(ctx context.Context, cutoff time.Time, params pagination.Params) ([]RentalSummary, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Rental{}).
		Where("return_date IS NULL AND rental_date < ?", cutoff).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []rentalRow
	err = r.summaryQuery(ctx).
		Where("rental.return_date IS NULL AND rental.rental_date < ?", cutoff).
		Order("rental.rental_date ASC, rental.rental_id ASC").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return summaries(rows), total, nil
}

func summaries(rows []rentalRow) []RentalSummary {
	out := make([]RentalSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.summary())
	}
	return out
}
