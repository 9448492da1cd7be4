package handlers

import (
	"net/http"

	"restaurant-pos-api/middleware"
	"restaurant-pos-api/repository"
	"restaurant-pos-api/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menu *services.MenuService
}

func NewMenuHandler(menu *services.MenuService) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// List returns the menu catalog, optionally filtered
func (h *MenuHandler) List(c *gin.Context) {
	filter := repository.MenuFilter{
		Category:      c.Query("category"),
		AvailableOnly: c.Query("available") == "true",
		SpecialsOnly:  c.Query("special") == "true",
	}
	items, err := h.menu.List(filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// Get returns one menu item
func (h *MenuHandler) Get(c *gin.Context) {
	item, err := h.menu.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// Create adds a menu item (manager and above)
func (h *MenuHandler) Create(c *gin.Context) {
	var req services.MenuItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.menu.Create(middleware.Identity(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// Update patches a menu item (manager and above)
func (h *MenuHandler) Update(c *gin.Context) {
	var req services.MenuItemPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.menu.Update(middleware.Identity(c), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// Delete removes a menu item (manager and above)
func (h *MenuHandler) Delete(c *gin.Context) {
	if err := h.menu.Delete(middleware.Identity(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
