package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Film is one catalog title. Physical copies live in Inventory.
type Film struct {
	FilmID             uint            `gorm:"column:film_id;primaryKey;autoIncrement" json:"film_id"`
	Title              string          `gorm:"column:title;not null" json:"title"`
	Description        *string         `gorm:"column:description" json:"description,omitempty"`
	ReleaseYear        *int            `gorm:"column:release_year" json:"release_year,omitempty"`
	LanguageID         uint            `gorm:"column:language_id;not null" json:"language_id"`
	OriginalLanguageID *uint           `gorm:"column:original_language_id" json:"original_language_id,omitempty"`
	RentalDuration     int             `gorm:"column:rental_duration;not null;default:3" json:"rental_duration"`
	RentalRate         decimal.Decimal `gorm:"column:rental_rate;type:numeric(4,2);not null" json:"rental_rate"`
	Length             *int            `gorm:"column:length" json:"length,omitempty"`
	ReplacementCost    decimal.Decimal `gorm:"column:replacement_cost;type:numeric(5,2);not null" json:"replacement_cost"`
	Rating             *string         `gorm:"column:rating" json:"rating,omitempty"`
	SpecialFeatures    *string         `gorm:"column:special_features" json:"special_features,omitempty"`
	LastUpdate         time.Time       `gorm:"column:last_update;autoUpdateTime" json:"last_update"`

	Language         *Language  `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	OriginalLanguage *Language  `gorm:"foreignKey:OriginalLanguageID" json:"original_language,omitempty"`
	Categories       []Category `gorm:"many2many:film_category;foreignKey:FilmID;joinForeignKey:FilmID;References:CategoryID;joinReferences:CategoryID" json:"categories,omitempty"`
}

func (Film) TableName() string { return "film" }
