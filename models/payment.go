package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentMethod represents how an order was paid
type PaymentMethod string

const (
	PayCash   PaymentMethod = "cash"
	PayCard   PaymentMethod = "card"
	PayMobile PaymentMethod = "mobile"
)

// ValidPaymentMethod reports whether m is a recognized payment method
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PayCash, PayCard, PayMobile:
		return true
	}
	return false
}

type Payment struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	OrderID     string        `json:"order_id" gorm:"not null;uniqueIndex"`
	Order       *Order        `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	Amount      float64       `json:"amount" gorm:"not null"`
	Tip         float64       `json:"tip"`
	Method      PaymentMethod `json:"payment_method" gorm:"not null"`
	PaymentDate time.Time     `json:"payment_date"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
