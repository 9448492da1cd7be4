package repository

import (
	"errors"
	"time"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository on the sqlite store
type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) Create(p *models.Payment) error {
	return r.db.Create(p).Error
}

func (r *GormPaymentRepository) GetByOrderID(orderID string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.E(errs.ErrNotFound, "no payment for order %s", orderID)
		}
		return nil, err
	}
	return &payment, nil
}

func (r *GormPaymentRepository) ListByDateRange(start, end time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.
		Where("payment_date >= ? AND payment_date < ?", start, end).
		Order("payment_date asc").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
