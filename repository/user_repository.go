package repository

import (
	"errors"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository on the sqlite store
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *GormUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.E(errs.ErrNotFound, "user %s not found", id)
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.E(errs.ErrNotFound, "no account for %s", email)
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) List(role models.Role) ([]models.User, error) {
	var users []models.User
	query := r.db.Order("name asc")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormUserRepository) Update(u *models.User) error {
	return r.db.Save(u).Error
}
