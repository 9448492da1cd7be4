package repository

import (
	"errors"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository on the sqlite store
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Create(o *models.Order) error {
	return r.db.Create(o).Error
}

func (r *GormOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.E(errs.ErrNotFound, "order %s not found", id)
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) List(filter OrderFilter) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.Preload("Items").Order("created_at desc")
	if filter.TableID != "" {
		query = query.Where("table_id = ?", filter.TableID)
	}
	if filter.WaiterID != "" {
		query = query.Where("waiter_id = ?", filter.WaiterID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) ListByTable(tableID string) ([]models.Order, error) {
	return r.List(OrderFilter{TableID: tableID})
}

func (r *GormOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.E(errs.ErrNotFound, "order %s not found", id)
	}
	return nil
}

func (r *GormOrderRepository) AddItem(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

func (r *GormOrderRepository) UpdateItem(item *models.OrderItem) error {
	return r.db.Save(item).Error
}
