package services

import (
	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"
	"restaurant-pos-api/policy"
	"restaurant-pos-api/repository"
)

type MenuService struct {
	menu repository.MenuRepository
}

func NewMenuService(menu repository.MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

type MenuItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
	Available   *bool   `json:"available"`
	IsSpecial   bool    `json:"is_special"`
}

func (s *MenuService) Create(actor models.Identity, in MenuItemInput) (*models.MenuItem, error) {
	if !policy.IsAtLeast(actor.Role, models.RoleManager) {
		return nil, errs.E(errs.ErrAuthorization, "only managers and above may edit the menu")
	}
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	item := &models.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Available:   available,
		IsSpecial:   in.IsSpecial,
	}
	if err := s.menu.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Get(id string) (*models.MenuItem, error) {
	return s.menu.GetByID(id)
}

func (s *MenuService) List(filter repository.MenuFilter) ([]models.MenuItem, error) {
	return s.menu.List(filter)
}

// MenuItemPatch updates only the fields present
type MenuItemPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Available   *bool    `json:"available"`
	IsSpecial   *bool    `json:"is_special"`
}

func (s *MenuService) Update(actor models.Identity, id string, patch MenuItemPatch) (*models.MenuItem, error) {
	if !policy.IsAtLeast(actor.Role, models.RoleManager) {
		return nil, errs.E(errs.ErrAuthorization, "only managers and above may edit the menu")
	}
	item, err := s.menu.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price <= 0 {
			return nil, errs.E(errs.ErrValidation, "price must be positive")
		}
		item.Price = *patch.Price
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}
	if patch.IsSpecial != nil {
		item.IsSpecial = *patch.IsSpecial
	}
	if err := s.menu.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Delete(actor models.Identity, id string) error {
	if !policy.IsAtLeast(actor.Role, models.RoleManager) {
		return errs.E(errs.ErrAuthorization, "only managers and above may edit the menu")
	}
	return s.menu.Delete(id)
}
