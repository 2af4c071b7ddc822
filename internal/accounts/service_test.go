package accounts

import (
	"context"
	"testing"

	"github.com/reelworks/rentaldesk-backend/pkg/config"
	"github.com/reelworks/rentaldesk-backend/pkg/db"
	"github.com/reelworks/rentaldesk-backend/pkg/db/models"
	pkgerrors "github.com/reelworks/rentaldesk-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Fast KDF parameters; production values make these tests crawl.
func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func setupAccountsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	for _, table := range []string{"user", "customer", "store", "staff"} {
		require.NoError(t, conn.Exec(`DROP TABLE IF EXISTS "`+table+`"`).Error)
	}

	ddl := []string{
		`CREATE TABLE store (
  store_id INTEGER PRIMARY KEY AUTOINCREMENT,
  manager_staff_id INTEGER NOT NULL,
  address_id INTEGER NOT NULL,
  last_update DATETIME
);`,
		`CREATE TABLE customer (
  customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
  store_id INTEGER NOT NULL,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  email TEXT,
  active INTEGER NOT NULL DEFAULT 1,
  create_date DATETIME,
  last_update DATETIME
);`,
		`CREATE TABLE "user" (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  is_admin INTEGER NOT NULL DEFAULT 0,
  first_name TEXT,
  last_name TEXT,
  role TEXT,
  customer_id INTEGER,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE UNIQUE INDEX uq_user_name ON "user"(name);`,
		`CREATE UNIQUE INDEX uq_user_email ON "user"(email);`,
	}
	for _, stmt := range ddl {
		require.NoError(t, conn.Exec(stmt).Error)
	}

	require.NoError(t, conn.Create(&models.Store{ManagerStaffID: 1, AddressID: 1}).Error)
	return conn
}

func newAccountsService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()

	svc, err := NewService(
		NewRepository(conn),
		db.NewWithConn(conn),
		testPasswordConfig(),
		config.RentalConfig{OverdueDays: 7, DefaultStaffID: 1, DefaultStoreID: 1},
	)
	require.NoError(t, err)
	return svc
}

func TestSignupCreatesUserAndCustomerTogether(t *testing.T) {
	conn := setupAccountsTestDB(t)
	svc := newAccountsService(t, conn)

	account, err := svc.Signup(context.Background(), SignupInput{
		Name:      "alice",
		Email:     "Alice@Example.com",
		Password:  "s3cret-pass",
		FirstName: "Alice",
		LastName:  "Anderson",
	})
	require.NoError(t, err)
	require.NotNil(t, account.CustomerID)
	assert.Equal(t, "alice@example.com", account.Email)
	require.NotNil(t, account.StoreID)
	assert.Equal(t, uint(1), *account.StoreID)

	var user models.User
	require.NoError(t, conn.Where("name = ?", "alice").First(&user).Error)
	require.NotNil(t, user.CustomerID)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	var customer models.Customer
	require.NoError(t, conn.Where("customer_id = ?", *user.CustomerID).First(&customer).Error)
	assert.Equal(t, "Alice", customer.FirstName)
}

func TestSignupDuplicateNameLeavesNoOrphanCustomer(t *testing.T) {
	conn := setupAccountsTestDB(t)
	svc := newAccountsService(t, conn)
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Name: "alice", Email: "alice@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	var before int64
	require.NoError(t, conn.Model(&models.Customer{}).Count(&before).Error)

	_, err = svc.Signup(ctx, SignupInput{Name: "alice", Email: "other@example.com", Password: "s3cret-pass"})
	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeConflict, coded.Code())

	var after int64
	require.NoError(t, conn.Model(&models.Customer{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestSignupDuplicateEmailRejected(t *testing.T) {
	conn := setupAccountsTestDB(t)
	svc := newAccountsService(t, conn)
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Name: "alice", Email: "alice@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, SignupInput{Name: "bob", Email: "alice@example.com", Password: "s3cret-pass"})
	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeConflict, coded.Code())
}

func TestSignupUnknownStoreWritesNothing(t *testing.T) {
	conn := setupAccountsTestDB(t)
	svc := newAccountsService(t, conn)

	_, err := svc.Signup(context.Background(), SignupInput{
		Name:     "carol",
		Email:    "carol@example.com",
		Password: "s3cret-pass",
		StoreID:  42,
	})
	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeValidation, coded.Code())

	var users, customers int64
	require.NoError(t, conn.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, conn.Model(&models.Customer{}).Count(&customers).Error)
	assert.Zero(t, users)
	assert.Zero(t, customers)
}

func TestSignupMissingFields(t *testing.T) {
	svc := newAccountsService(t, setupAccountsTestDB(t))

	_, err := svc.Signup(context.Background(), SignupInput{Name: "dave"})
	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeValidation, coded.Code())
}

func TestLoginVerifiesPassword(t *testing.T) {
	conn := setupAccountsTestDB(t)
	svc := newAccountsService(t, conn)
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Name: "alice", Email: "alice@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	account, err := svc.Login(ctx, LoginInput{Name: "alice", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Name)
	require.NotNil(t, account.StoreID)
	assert.Equal(t, uint(1), *account.StoreID)

	_, err = svc.Login(ctx, LoginInput{Name: "alice", Password: "wrong-pass"})
	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeUnauthorized, coded.Code())
}

func TestLoginUnknownUserIndistinguishable(t *testing.T) {
	svc := newAccountsService(t, setupAccountsTestDB(t))

	_, err := svc.Login(context.Background(), LoginInput{Name: "ghost", Password: "whatever"})
	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeUnauthorized, coded.Code())
}
