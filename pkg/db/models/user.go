package models

import "time"

// User is an application login identity, optionally linked 1:1 to a Customer
// profile. PasswordHash stores a single opaque Argon2id credential string.
type User struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;not null;uniqueIndex:uq_user_name" json:"name"`
	Email        string    `gorm:"column:email;not null;uniqueIndex:uq_user_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	FirstName    *string   `gorm:"column:first_name" json:"first_name,omitempty"`
	LastName     *string   `gorm:"column:last_name" json:"last_name,omitempty"`
	Role         *string   `gorm:"column:role" json:"role,omitempty"`
	CustomerID   *uint     `gorm:"column:customer_id" json:"customer_id,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (User) TableName() string { return "user" }
