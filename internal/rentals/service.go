package rentals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reelworks/rentaldesk-backend/pkg/config"
	"github.com/reelworks/rentaldesk-backend/pkg/db/models"
	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
	"github.com/reelworks/rentaldesk-backend/pkg/pagination"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo Repository
	tx   txRunner
	cfg  config.RentalConfig
	now  func() time.Time
}

// NewService builds the rental lifecycle service.
func NewService(repo Repository, tx txRunner, cfg config.RentalConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("rentals repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo: repo,
		tx:   tx,
		cfg:  cfg,
		now:  time.Now,
	}, nil
}

// Create rents out as many of the requested copies as are available in a
// single transaction. Copies already out, or unknown inventory IDs, are
// skipped and reported back; the whole batch fails only when every copy is
// unavailable or a referenced customer or staff member does not exist.
func (s *service) Create(ctx context.Context, input CreateInput) (*CreateResult, error) {
	if input.CustomerID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer_id is required")
	}
	if len(input.InventoryIDs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "inventory_ids are required")
	}

	staffID := input.StaffID
	if staffID == 0 {
		staffID = s.cfg.DefaultStaffID
	}
	requested := dedupe(input.InventoryIDs)
	rentedAt := s.now().UTC()

	var (
		createdIDs  []uint
		unavailable []uint
	)
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		ok, err := repo.CustomerExists(ctx, input.CustomerID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking customer")
		}
		if !ok {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown customer").
				WithDetails(map[string]any{"customer_id": input.CustomerID})
		}
		ok, err = repo.StaffExists(ctx, staffID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking staff")
		}
		if !ok {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown staff").
				WithDetails(map[string]any{"staff_id": staffID})
		}

		existing, err := repo.ExistingInventory(ctx, requested)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking inventory")
		}

		for _, inventoryID := range requested {
			if !existing[inventoryID] {
				unavailable = append(unavailable, inventoryID)
				continue
			}
			rental := newOpenRental(inventoryID, input.CustomerID, staffID, rentedAt)
			inserted, err := repo.InsertOpenRental(ctx, rental)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating rental")
			}
			if !inserted {
				unavailable = append(unavailable, inventoryID)
				continue
			}
			createdIDs = append(createdIDs, rental.RentalID)
		}

		if len(createdIDs) == 0 {
			return pkgerrors.New(pkgerrors.CodeNoCopies, "no requested copies available").
				WithDetails(map[string]any{"unavailable_inventory_ids": unavailable})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := s.repo.FindSummaries(ctx, createdIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading created rentals")
	}

	result := &CreateResult{
		RequestedCount:          len(requested),
		CreatedCount:            len(created),
		Rentals:                 created,
		UnavailableInventoryIDs: unavailable,
	}
	if len(unavailable) > 0 {
		result.Warning = "some requested copies were unavailable"
	}
	return result, nil
}

// Return closes an open rental. Returning a rental twice is rejected, even
// when two requests race on the same row.
func (s *service) Return(ctx context.Context, rentalID uint) (*RentalSummary, error) {
	rental, err := s.repo.FindByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "rental not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading rental")
	}
	if !rental.Open() {
		return nil, pkgerrors.New(pkgerrors.CodeAlreadyReturned, "rental already returned")
	}

	closed, err := s.repo.CloseRental(ctx, rentalID, s.now().UTC())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "closing rental")
	}
	if !closed {
		return nil, pkgerrors.New(pkgerrors.CodeAlreadyReturned, "rental already returned")
	}

	summary, err := s.repo.FindSummary(ctx, rentalID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading rental")
	}
	return summary, nil
}

func (s *service) ListActive(ctx context.Context, customerID *uint, params pagination.Params) (*RentalPage, error) {
	params = params.Normalize()
	rows, total, err := s.repo.ListActive(ctx, customerID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing rentals")
	}
	return &RentalPage{
		Meta:    pagination.MetaFor(params, total),
		Rentals: rows,
	}, nil
}

// ListOverdue reports open rentals older than the configured overdue window,
// oldest first, with the age of each rental in whole days.
func (s *service) ListOverdue(ctx context.Context, params pagination.Params) (*OverduePage, error) {
	params = params.Normalize()
	now := s.now().UTC()
	cutoff := now.Add(-time.Duration(s.cfg.OverdueDays) * 24 * time.Hour)

	rows, total, err := s.repo.ListOpenBefore(ctx, cutoff, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing overdue rentals")
	}

	overdue := make([]OverdueRental, 0, len(rows))
	for _, row := range rows {
		overdue = append(overdue, OverdueRental{
			RentalSummary: row,
			DaysOverdue:   int(now.Sub(row.RentalDate).Hours() / 24),
		})
	}
	return &OverduePage{
		Meta:    pagination.MetaFor(params, total),
		Rentals: overdue,
	}, nil
}

func newOpenRental(inventoryID, customerID, staffID uint, rentedAt time.Time) *models.Rental {
	return &models.Rental{
		RentalDate:  rentedAt,
		InventoryID: inventoryID,
		CustomerID:  customerID,
		StaffID:     staffID,
	}
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
