package models

import "time"

// Category is a read-mostly lookup entity.
type Category struct {
	CategoryID uint      `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	LastUpdate time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}

func (Category) TableName() string { return "category" }
