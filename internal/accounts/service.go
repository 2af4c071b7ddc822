package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reelworks/rentaldesk-backend/pkg/config"
	"github.com/reelworks/rentaldesk-backend/pkg/db"
	"github.com/reelworks/rentaldesk-backend/pkg/db/models"
	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
	"github.com/reelworks/rentaldesk-backend/pkg/security"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service registers and authenticates accounts.
type Service interface {
	Signup(ctx context.Context, input SignupInput) (*Account, error)
	Login(ctx context.Context, input LoginInput) (*Account, error)
}

type service struct {
	repo        Repository
	tx          txRunner
	passwordCfg config.PasswordConfig
	rentalCfg   config.RentalConfig
}

// NewService builds the accounts service.
func NewService(repo Repository, tx txRunner, passwordCfg config.PasswordConfig, rentalCfg config.RentalConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("accounts repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:        repo,
		tx:          tx,
		passwordCfg: passwordCfg,
		rentalCfg:   rentalCfg,
	}, nil
}

// Signup creates the customer profile and the login identity in one
// transaction so a failure on either side leaves nothing behind. The
// password is hashed before the transaction opens to keep the slow KDF out
// of the database's critical section.
func (s *service) Signup(ctx context.Context, input SignupInput) (*Account, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name, email and password are required")
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	storeID := input.StoreID
	if storeID == 0 {
		storeID = s.rentalCfg.DefaultStoreID
	}

	var user *models.User
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		taken, err := repo.CountByNameOrEmail(ctx, name, email)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking existing accounts")
		}
		if taken > 0 {
			return pkgerrors.New(pkgerrors.CodeConflict, "name or email already registered")
		}

		ok, err := repo.StoreExists(ctx, storeID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking store")
		}
		if !ok {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown store").
				WithDetails(map[string]any{"store_id": storeID})
		}

		customer := &models.Customer{
			StoreID:   storeID,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     &email,
			Active:    true,
		}
		if err := repo.CreateCustomer(ctx, customer); err != nil {
			if db.IsForeignKeyViolation(err) {
				return pkgerrors.New(pkgerrors.CodeValidation, "unknown store")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating customer")
		}

		user = &models.User{
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			FirstName:    optional(input.FirstName),
			LastName:     optional(input.LastName),
			CustomerID:   &customer.CustomerID,
		}
		if err := repo.CreateUser(ctx, user); err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, "name or email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	account := accountFor(user)
	account.StoreID = &storeID
	return account, nil
}

// Login verifies the password against the stored Argon2id hash. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *service) Login(ctx context.Context, input LoginInput) (*Account, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name and password are required")
	}

	user, err := s.repo.FindUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading user")
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	account := accountFor(user)
	if user.CustomerID != nil {
		customer, err := s.repo.FindCustomerByID(ctx, *user.CustomerID)
		if err == nil {
			account.StoreID = &customer.StoreID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading customer")
		}
	}
	return account, nil
}

func accountFor(user *models.User) *Account {
	return &Account{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		IsAdmin:    user.IsAdmin,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		CustomerID: user.CustomerID,
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
