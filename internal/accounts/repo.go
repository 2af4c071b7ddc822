package accounts

import (
	"context"

	"github.com/reelworks/rentaldesk-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines the user and customer writes the signup flow needs.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CountByNameOrEmail(ctx context.Context, name, email string) (int64, error)
	StoreExists(ctx context.Context, storeID uint) (bool, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByName(ctx context.Context, name string) (*models.User, error)
	FindCustomerByID(ctx context.Context, customerID uint) (*models.Customer, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an accounts repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CountByNameOrEmail(ctx context.Context, name, email string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("name = ? OR email = ?", name, email).
		Count(&count).Error
	return count, err
}

func (r *repository) StoreExists(ctx context.Context, storeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Store{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *repository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) FindUserByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) FindCustomerByID(ctx context.Context, customerID uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
