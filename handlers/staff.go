package handlers

import (
	"net/http"

	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/services"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	staff *services.StaffService
}

func NewStaffHandler(staff *services.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// List returns staff records; ?role=waiter is open to all staff, wider
// listings need the staff permission
func (h *StaffHandler) List(c *gin.Context) {
	users, err := h.staff.List(middleware.Identity(c), models.Role(c.Query("role")))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "staff": users})
}

// Get returns one staff record
func (h *StaffHandler) Get(c *gin.Context) {
	user, err := h.staff.Get(middleware.Identity(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Create provisions a staff account, gated by the provisioning hierarchy
func (h *StaffHandler) Create(c *gin.Context) {
	var req services.CreateStaffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.staff.Create(middleware.Identity(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Staff account created", "user": user})
}

// Update patches a staff account
func (h *StaffHandler) Update(c *gin.Context) {
	var req services.StaffPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.staff.Update(middleware.Identity(c), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff account updated", "user": user})
}

// Deactivate soft-deletes a staff account
func (h *StaffHandler) Deactivate(c *gin.Context) {
	user, err := h.staff.Deactivate(middleware.Identity(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff account deactivated", "user": user})
}
