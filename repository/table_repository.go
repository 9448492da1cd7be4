package repository

import (
	"errors"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"

	"gorm.io/gorm"
)

// GormTableRepository implements TableRepository on the sqlite store
type GormTableRepository struct {
	db *gorm.DB
}

func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

func (r *GormTableRepository) Create(t *models.Table) error {
	return r.db.Create(t).Error
}

func (r *GormTableRepository) GetByID(id string) (*models.Table, error) {
	var table models.Table
	if err := r.db.Preload("Waiter").First(&table, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.E(errs.ErrNotFound, "table %s not found", id)
		}
		return nil, err
	}
	return &table, nil
}

func (r *GormTableRepository) GetByNumber(number int) (*models.Table, error) {
	var table models.Table
	if err := r.db.First(&table, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.E(errs.ErrNotFound, "table number %d not found", number)
		}
		return nil, err
	}
	return &table, nil
}

func (r *GormTableRepository) List(filter TableFilter) ([]models.Table, error) {
	var tables []models.Table
	query := r.db.Preload("Waiter").Order("number asc")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Floor != 0 {
		query = query.Where("floor = ?", filter.Floor)
	}
	if err := query.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *GormTableRepository) Update(t *models.Table) error {
	// Save writes every column, so cleared occupancy fields land as NULL
	return r.db.Save(t).Error
}
