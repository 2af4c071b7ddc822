package rentals

import (
	"time"

	"github.com/reelworks/rentaldesk-backend/pkg/pagination"
)

// CreateInput is the batch rental request. StaffID falls back to the
// configured default counter staff when zero.
type CreateInput struct {
	CustomerID   uint
	InventoryIDs []uint
	StaffID      uint
}

// RentalSummary is a rental enriched for display with the film title, the
// store holding the copy and the customer name.
type RentalSummary struct {
	RentalID     uint       `json:"rental_id"`
	InventoryID  uint       `json:"inventory_id"`
	FilmID       uint       `json:"film_id"`
	FilmTitle    string     `json:"film_title"`
	StoreID      uint       `json:"store_id"`
	CustomerID   uint       `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	StaffID      uint       `json:"staff_id"`
	RentalDate   time.Time  `json:"rental_date"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
}

// CreateResult reports partial success: rentals created plus the requested
// copies that were skipped because they were out (or unknown).
type CreateResult struct {
	RequestedCount          int             `json:"requested_count"`
	CreatedCount            int             `json:"created_count"`
	Rentals                 []RentalSummary `json:"rentals"`
	UnavailableInventoryIDs []uint          `json:"unavailable_inventory_ids,omitempty"`
	Warning                 string          `json:"warning,omitempty"`
}

// OverdueRental is an open rental past the overdue threshold.
type OverdueRental struct {
	RentalSummary
	DaysOverdue int `json:"days_overdue"`
}

// RentalPage is one page of active rentals.
type RentalPage struct {
	pagination.Meta
	Rentals []RentalSummary `json:"rentals"`
}

// OverduePage is one page of the overdue scan, oldest rentals first.
type OverduePage struct {
	pagination.Meta
	Rentals []OverdueRental `json:"rentals"`
}
