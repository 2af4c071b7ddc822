package models

import "time"

// FilmCategory is the junction row for the Film<->Category many-to-many.
type FilmCategory struct {
	FilmID     uint      `gorm:"column:film_id;primaryKey" json:"film_id"`
	CategoryID uint      `gorm:"column:category_id;primaryKey" json:"category_id"`
	LastUpdate time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}

func (FilmCategory) TableName() string { return "film_category" }
