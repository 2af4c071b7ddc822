package models

import "time"

// Inventory is one physical copy of a film held at a store. Rental logic
// references it but never mutates it.
type Inventory struct {
	InventoryID uint      `gorm:"column:inventory_id;primaryKey;autoIncrement" json:"inventory_id"`
	FilmID      uint      `gorm:"column:film_id;not null" json:"film_id"`
	StoreID     uint      `gorm:"column:store_id;not null" json:"store_id"`
	LastUpdate  time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`

	Film *Film `gorm:"foreignKey:FilmID" json:"film,omitempty"`
}

func (Inventory) TableName() string { return "inventory" }
