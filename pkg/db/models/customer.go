package models

import "time"

// Customer is a rental-counter profile. An application User may link to one
// via user.customer_id.
type Customer struct {
	CustomerID uint      `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	StoreID    uint      `gorm:"column:store_id;not null" json:"store_id"`
	FirstName  string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName   string    `gorm:"column:last_name;not null" json:"last_name"`
	Email      *string   `gorm:"column:email" json:"email,omitempty"`
	Active     bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreateDate time.Time `gorm:"column:create_date;autoCreateTime" json:"create_date"`
	LastUpdate time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}

func (Customer) TableName() string { return "customer" }
