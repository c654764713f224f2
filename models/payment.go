package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyUSD is the only currency the service currently accepts.
const CurrencyUSD = "USD"

// Payment is the persisted payment record. It is created exactly once and
// never updated or deleted by this service.
type Payment struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   string          `json:"order_id" gorm:"type:varchar(64);not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Currency  string          `json:"currency" gorm:"type:varchar(3);not null;index"`
	CreatedAt time.Time       `json:"created_at"`
}

// PaymentCreateRequest is the creation payload. Amount arrives as a float on
// the wire and is rounded to two decimal places before persistence.
type PaymentCreateRequest struct {
	OrderID  string  `json:"order_id" binding:"required,min=1,max=64"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency" binding:"omitempty,oneof=USD"`
}

// PaymentResponse is the wire representation of a stored payment.
type PaymentResponse struct {
	ID        uint      `json:"id"`
	OrderID   string    `json:"order_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts the stored entity back to its wire shape.
func (p *Payment) ToResponse() PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Amount:    p.Amount.InexactFloat64(),
		Currency:  p.Currency,
		CreatedAt: p.CreatedAt,
	}
}
