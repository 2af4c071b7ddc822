package availability

import (
	"context"
	"fmt"

	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
)

// Service answers availability questions for films and individual copies.
type Service interface {
	FilmAtStore(ctx context.Context, filmID uint, storeID *uint) (*FilmAvailability, error)
	Check(ctx context.Context, inventoryIDs []uint) (*CheckResult, error)
	Summarize(ctx context.Context, query CopyCountQuery) (*Summary, error)
}

type service struct {
	repo Repository
}

// NewService builds the availability service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("availability repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) FilmAtStore(ctx context.Context, filmID uint, storeID *uint) (*FilmAvailability, error) {
	exists, err := s.repo.FilmExists(ctx, filmID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking film")
	}
	if !exists {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "film not found")
	}
	if storeID != nil {
		exists, err := s.repo.StoreExists(ctx, *storeID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking store")
		}
		if !exists {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
	}

	copies, err := s.repo.CopiesForFilm(ctx, filmID, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading copies")
	}

	result := &FilmAvailability{
		FilmID:                filmID,
		StoreID:               storeID,
		TotalCopies:           len(copies),
		AvailableInventoryIDs: []uint{},
		RentedInventoryIDs:    []uint{},
	}
	for _, c := range copies {
		result.FilmTitle = c.FilmTitle
		if c.Available {
			result.AvailableInventoryIDs = append(result.AvailableInventoryIDs, c.InventoryID)
		} else {
			result.RentedInventoryIDs = append(result.RentedInventoryIDs, c.InventoryID)
		}
	}
	result.AvailableCopies = len(result.AvailableInventoryIDs)
	result.RentedCopies = len(result.RentedInventoryIDs)
	result.IsAvailable = result.AvailableCopies > 0
	return result, nil
}

// Check reports the live state of each requested copy. Unknown inventory IDs
// come back in their own list so callers can tell "rented" from "no such copy".
func (s *service) Check(ctx context.Context, inventoryIDs []uint) (*CheckResult, error) {
	if len(inventoryIDs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "inventory_ids are required")
	}

	copies, err := s.repo.CopiesByInventoryIDs(ctx, inventoryIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking copies")
	}

	result := &CheckResult{
		Copies:                copies,
		AvailableInventoryIDs: []uint{},
		RentedInventoryIDs:    []uint{},
	}
	found := make(map[uint]bool, len(copies))
	for _, c := range copies {
		found[c.InventoryID] = true
		if c.Available {
			result.AvailableInventoryIDs = append(result.AvailableInventoryIDs, c.InventoryID)
		} else {
			result.RentedInventoryIDs = append(result.RentedInventoryIDs, c.InventoryID)
		}
	}
	seen := make(map[uint]bool, len(inventoryIDs))
	for _, id := range inventoryIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !found[id] {
			result.UnknownInventoryIDs = append(result.UnknownInventoryIDs, id)
		}
	}
	return result, nil
}

func (s *service) Summarize(ctx context.Context, query CopyCountQuery) (*Summary, error) {
	if query.GroupBy == "" {
		query.GroupBy = GroupByFilm
	}
	if !query.GroupBy.Valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "group_by must be film, store or film_store")
	}

	rows, err := s.repo.Summarize(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "summarizing inventory")
	}
	return &Summary{GroupBy: query.GroupBy, Rows: rows}, nil
}
