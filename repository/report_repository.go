package repository

import (
	"time"

	"restaurant-pos-api/models"

	"gorm.io/gorm"
)

// GormReportRepository implements the read-side aggregate queries
type GormReportRepository struct {
	db *gorm.DB
}

func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// ItemFrequency rolls up how often each menu item was ordered on settled
// orders in the range
func (r *GormReportRepository) ItemFrequency(start, end time.Time) ([]ItemCount, error) {
	var rows []ItemCount
	err := r.db.
		Table("order_items").
		Select("order_items.menu_item_id as menu_item_id, order_items.name as name, "+
			"SUM(order_items.quantity) as quantity, "+
			"SUM(order_items.price * order_items.quantity) as revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ?", models.OrderPaid).
		Where("orders.created_at >= ? AND orders.created_at < ?", start, end).
		Group("order_items.menu_item_id, order_items.name").
		Order("quantity desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormReportRepository) OrdersInRange(start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
