package repository

import (
	"github.com/Govind-619/PaySphere/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentCreator is the single operation the HTTP layer needs from the
// store. Tests substitute their own implementation.
type PaymentCreator interface {
	Create(req *models.PaymentCreateRequest) (*models.Payment, error)
}

// PaymentRepository persists payments through a scoped GORM session. Build
// one per request around the request's session.
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository returns a repository bound to the given session.
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create rounds the amount to two decimal places, inserts the payment and
// reloads it to pick up the store-assigned id and timestamp. Store errors
// propagate to the caller untouched.
func (r *PaymentRepository) Create(req *models.PaymentCreateRequest) (*models.Payment, error) {
	currency := req.Currency
	if currency == "" {
		currency = models.CurrencyUSD
	}

	payment := models.Payment{
		OrderID:  req.OrderID,
		Amount:   decimal.NewFromFloat(req.Amount).Round(2),
		Currency: currency,
	}

	if err := r.db.Create(&payment).Error; err != nil {
		return nil, err
	}

	if err := r.db.First(&payment, payment.ID).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}
