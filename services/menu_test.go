package services

import (
	"testing"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"
	"restaurant-pos-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuMutationsNeedManager(t *testing.T) {
	svc := NewMenuService(newMemMenuRepo())

	input := MenuItemInput{Name: "Tiramisu", Price: 7.50, Category: "desserts"}
	for _, role := range []models.Role{models.RoleHost, models.RoleWaiter, models.RoleChef} {
		_, err := svc.Create(asRole(role), input)
		require.Error(t, err, "role %s", role)
		assert.ErrorIs(t, err, errs.ErrAuthorization)
	}

	item, err := svc.Create(asRole(models.RoleManager), input)
	require.NoError(t, err)
	assert.True(t, item.Available)

	err = svc.Delete(asRole(models.RoleChef), item.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthorization)

	require.NoError(t, svc.Delete(asRole(models.RoleAdmin), item.ID))
	err = svc.Delete(asRole(models.RoleAdmin), item.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestMenuUpdatePatch(t *testing.T) {
	svc := NewMenuService(newMemMenuRepo())
	item, err := svc.Create(asRole(models.RoleManager), MenuItemInput{Name: "Soup", Price: 6.00})
	require.NoError(t, err)

	price := 6.50
	special := true
	updated, err := svc.Update(asRole(models.RoleManager), item.ID, MenuItemPatch{Price: &price, IsSpecial: &special})
	require.NoError(t, err)
	assert.Equal(t, 6.50, updated.Price)
	assert.True(t, updated.IsSpecial)
	assert.Equal(t, "Soup", updated.Name, "unpatched fields stay put")

	bad := -1.0
	_, err = svc.Update(asRole(models.RoleManager), item.ID, MenuItemPatch{Price: &bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestMenuListFilters(t *testing.T) {
	repo := newMemMenuRepo()
	svc := NewMenuService(repo)
	manager := asRole(models.RoleManager)

	_, err := svc.Create(manager, MenuItemInput{Name: "Soup", Price: 6.00, Category: "starters"})
	require.NoError(t, err)
	special := MenuItemInput{Name: "Truffle Pasta", Price: 24.00, Category: "mains", IsSpecial: true}
	_, err = svc.Create(manager, special)
	require.NoError(t, err)

	specials, err := svc.List(repository.MenuFilter{SpecialsOnly: true})
	require.NoError(t, err)
	require.Len(t, specials, 1)
	assert.Equal(t, "Truffle Pasta", specials[0].Name)

	starters, err := svc.List(repository.MenuFilter{Category: "starters"})
	require.NoError(t, err)
	assert.Len(t, starters, 1)
}
