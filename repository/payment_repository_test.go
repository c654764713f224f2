package repository

import (
	"testing"

	"github.com/Govind-619/PaySphere/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ PaymentCreator = (*PaymentRepository)(nil)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Payment{}))
	return db
}

func TestCreateAssignsStoreFields(t *testing.T) {
	repo := NewPaymentRepository(newTestDB(t))

	payment, err := repo.Create(&models.PaymentCreateRequest{
		OrderID:  "ORD123",
		Amount:   10.5,
		Currency: "USD",
	})
	require.NoError(t, err)

	assert.Positive(t, payment.ID)
	assert.Equal(t, "ORD123", payment.OrderID)
	assert.Equal(t, "USD", payment.Currency)
	assert.False(t, payment.CreatedAt.IsZero())
	assert.True(t, payment.Amount.Equal(decimal.NewFromFloat(10.5)))
}

func TestCreateRoundsAmountToTwoDecimals(t *testing.T) {
	repo := NewPaymentRepository(newTestDB(t))

	payment, err := repo.Create(&models.PaymentCreateRequest{
		OrderID:  "ORD123",
		Amount:   10.556,
		Currency: "USD",
	})
	require.NoError(t, err)

	assert.True(t, payment.Amount.Equal(decimal.NewFromFloat(10.56)),
		"expected 10.56, got %s", payment.Amount)
}

func TestCreateDefaultsCurrency(t *testing.T) {
	repo := NewPaymentRepository(newTestDB(t))

	payment, err := repo.Create(&models.PaymentCreateRequest{
		OrderID: "ORD123",
		Amount:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, models.CurrencyUSD, payment.Currency)
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewPaymentRepository(newTestDB(t))

	first, err := repo.Create(&models.PaymentCreateRequest{OrderID: "ORD1", Amount: 1})
	require.NoError(t, err)
	second, err := repo.Create(&models.PaymentCreateRequest{OrderID: "ORD2", Amount: 2})
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestCreateAllowsDuplicateOrderIDs(t *testing.T) {
	repo := NewPaymentRepository(newTestDB(t))

	_, err := repo.Create(&models.PaymentCreateRequest{OrderID: "ORD1", Amount: 1})
	require.NoError(t, err)
	_, err = repo.Create(&models.PaymentCreateRequest{OrderID: "ORD1", Amount: 2})
	assert.NoError(t, err)
}

func TestCreatePropagatesStoreErrors(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	repo := NewPaymentRepository(db)
	_, err = repo.Create(&models.PaymentCreateRequest{OrderID: "ORD1", Amount: 1})
	assert.Error(t, err)
}
