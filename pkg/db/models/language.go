package models

import "time"

// Language is a read-mostly lookup entity. Films reference it twice: spoken
// language and optional original language.
type Language struct {
	LanguageID uint      `gorm:"column:language_id;primaryKey;autoIncrement" json:"language_id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	LastUpdate time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}

func (Language) TableName() string { return "language" }
