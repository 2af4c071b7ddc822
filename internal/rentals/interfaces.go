package rentals

import (
	"context"
	"time"

	"github.com/reelworks/rentaldesk-backend/pkg/db/models"
	"github.com/reelworks/rentaldesk-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository defines persistence operations for rental rows. Writes that
// must observe the one-open-rental-per-copy rule go through InsertOpenRental
// and CloseRental, which report whether the row actually changed.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CustomerExists(ctx context.Context, customerID uint) (bool, error)
	StaffExists(ctx context.Context, staffID uint) (bool, error)
	ExistingInventory(ctx context.Context, inventoryIDs []uint) (map[uint]bool, error)
	InsertOpenRental(ctx context.Context, rental *models.Rental) (bool, error)
	FindByID(ctx context.Context, rentalID uint) (*models.Rental, error)
	CloseRental(ctx context.Context, rentalID uint, returnedAt time.Time) (bool, error)
	FindSummary(ctx context.Context, rentalID uint) (*RentalSummary, error)
	FindSummaries(ctx context.Context, rentalIDs []uint) ([]RentalSummary, error)
	ListActive(ctx context.Context, customerID *uint, params pagination.Params) ([]RentalSummary, int64, error)
	ListOpenBefore(ctx context.Context, cutoff time.Time, params pagination.Params) ([]RentalSummary, int64, error)
}

// Service defines the rental lifecycle operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*CreateResult, error)
	Return(ctx context.Context, rentalID uint) (*RentalSummary, error)
	ListActive(ctx context.Context, customerID *uint, params pagination.Params) (*RentalPage, error)
	ListOverdue(ctx context.Context, params pagination.Params) (*OverduePage, error)
}
