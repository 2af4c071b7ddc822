package models

import "time"

// Store owns inventory copies and is managed by one staff member.
type Store struct {
	StoreID        uint      `gorm:"column:store_id;primaryKey;autoIncrement" json:"store_id"`
	ManagerStaffID uint      `gorm:"column:manager_staff_id;not null" json:"manager_staff_id"`
	AddressID      uint      `gorm:"column:address_id;not null" json:"address_id"`
	LastUpdate     time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}

func (Store) TableName() string { return "store" }
