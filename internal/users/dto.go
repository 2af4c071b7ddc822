package users

import (
	"github.com/reelworks/rentaldesk-backend/pkg/db/models"
	"github.com/reelworks/rentaldesk-backend/pkg/pagination"
)

// UpdateInput carries the editable profile fields. Nil means "leave as is".
type UpdateInput struct {
	Name      *string
	Email     *string
	FirstName *string
	LastName  *string
	Password  *string
}

// Empty reports whether the update would change nothing.
func (u UpdateInput) Empty() bool {
	return u.Name == nil && u.Email == nil && u.FirstName == nil && u.LastName == nil && u.Password == nil
}

// UserView is the sanitized projection of a user. The password hash never
// leaves the service layer.
type UserView struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	IsAdmin    bool    `json:"is_admin"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Role       *string `json:"role,omitempty"`
	CustomerID *uint   `json:"customer_id,omitempty"`
}

// UserPage is one page of users.
type UserPage struct {
	pagination.Meta
	Users []UserView `json:"users"`
}

func userView(user models.User) UserView {
	return UserView{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		IsAdmin:    user.IsAdmin,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Role:       user.Role,
		CustomerID: user.CustomerID,
	}
}
