package accounts

// SignupInput registers a login identity and its customer profile together.
type SignupInput struct {
	Name      string
	Email     string
	Password  string
	FirstName string
	LastName  string
	StoreID   uint
}

// LoginInput authenticates by user name and password.
type LoginInput struct {
	Name     string
	Password string
}

// Account is the public view of a user plus the linked customer profile.
type Account struct {
	UserID     uint    `json:"user_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	IsAdmin    bool    `json:"is_admin"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	CustomerID *uint   `json:"customer_id,omitempty"`
	StoreID    *uint   `json:"store_id,omitempty"`
}
