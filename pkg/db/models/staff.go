package models

import "time"

// Staff is kept minimal: rentals record which staff member handled them.
type Staff struct {
	StaffID    uint      `gorm:"column:staff_id;primaryKey;autoIncrement" json:"staff_id"`
	FirstName  string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName   string    `gorm:"column:last_name;not null" json:"last_name"`
	StoreID    uint      `gorm:"column:store_id;not null" json:"store_id"`
	Active     bool      `gorm:"column:active;not null;default:true" json:"active"`
	LastUpdate time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}

func (Staff) TableName() string { return "staff" }
