package models

import "time"

// Rental is one checkout of one inventory copy. A NULL return_date means the
// rental is open and the copy is out. The uq_rental_open_inventory partial
// unique index guarantees at most one open rental per copy.
type Rental struct {
	RentalID    uint       `gorm:"column:rental_id;primaryKey;autoIncrement" json:"rental_id"`
	RentalDate  time.Time  `gorm:"column:rental_date;not null" json:"rental_date"`
	InventoryID uint       `gorm:"column:inventory_id;not null" json:"inventory_id"`
	CustomerID  uint       `gorm:"column:customer_id;not null" json:"customer_id"`
	ReturnDate  *time.Time `gorm:"column:return_date" json:"return_date,omitempty"`
	StaffID     uint       `gorm:"column:staff_id;not null" json:"staff_id"`
	LastUpdate  time.Time  `gorm:"column:last_update;autoUpdateTime" json:"last_update"`

	Inventory *Inventory `gorm:"foreignKey:InventoryID" json:"inventory,omitempty"`
	Customer  *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (Rental) TableName() string { return "rental" }

// Open reports whether the copy is still checked out.
func (r Rental) Open() bool { return r.ReturnDate == nil }
