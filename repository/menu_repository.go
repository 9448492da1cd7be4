package repository

import (
	"errors"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"

	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository on the sqlite store
type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

func (r *GormMenuRepository) Create(m *models.MenuItem) error {
	return r.db.Create(m).Error
}

func (r *GormMenuRepository) GetByID(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.E(errs.ErrNotFound, "menu item %s not found", id)
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormMenuRepository) List(filter MenuFilter) ([]models.MenuItem, error) {
	var items []models.MenuItem
	query := r.db.Order("category asc, name asc")
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.AvailableOnly {
		query = query.Where("available = ?", true)
	}
	if filter.SpecialsOnly {
		query = query.Where("is_special = ?", true)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormMenuRepository) Update(m *models.MenuItem) error {
	return r.db.Save(m).Error
}

func (r *GormMenuRepository) Delete(id string) error {
	result := r.db.Delete(&models.MenuItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.E(errs.ErrNotFound, "menu item %s not found", id)
	}
	return nil
}
