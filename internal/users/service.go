package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reelworks/rentaldesk-backend/pkg/config"
	"github.com/reelworks/rentaldesk-backend/pkg/db"
	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
	"github.com/reelworks/rentaldesk-backend/pkg/pagination"
	"github.com/reelworks/rentaldesk-backend/pkg/security"
	"gorm.io/gorm"
)

// Service serves user administration reads and profile edits.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*UserPage, error)
	GetByID(ctx context.Context, id uint) (*UserView, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*UserView, error)
}

type service struct {
	repo        Repository
	passwordCfg config.PasswordConfig
}

// NewService builds the users service.
func NewService(repo Repository, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo, passwordCfg: passwordCfg}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*UserPage, error) {
	params = params.Normalize()
	rows, total, err := s.repo.ListUsers(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing users")
	}
	views := make([]UserView, 0, len(rows))
	for _, user := range rows {
		views = append(views, userView(user))
	}
	return &UserPage{
		Meta:  pagination.MetaFor(params, total),
		Users: views,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*UserView, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading user")
	}
	view := userView(*user)
	return &view, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateInput) (*UserView, error) {
	if input.Empty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading user")
	}

	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "email cannot be empty")
		}
		updates["email"] = email
	}
	if input.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*input.LastName)
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "password cannot be empty")
		}
		hash, err := security.HashPassword(*input.Password, s.passwordCfg)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
		}
		updates["password_hash"] = hash
	}

	if err := s.repo.UpdateUser(ctx, id, updates); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "name or email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating user")
	}

	return s.GetByID(ctx, id)
}
