package handlers

import (
	"net/http"
	"strconv"

	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/repository"
	"restaurant-pos-api/services"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	tables *services.TableService
}

func NewTableHandler(tables *services.TableService) *TableHandler {
	return &TableHandler{tables: tables}
}

// Create adds a new table (manager and above)
func (h *TableHandler) Create(c *gin.Context) {
	var req services.CreateTableInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	table, err := h.tables.Create(middleware.Identity(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Table created", "table": table})
}

// Get returns one table
func (h *TableHandler) Get(c *gin.Context) {
	table, err := h.tables.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": table})
}

// List returns tables, optionally filtered by status or floor
func (h *TableHandler) List(c *gin.Context) {
	filter := repository.TableFilter{
		Status: models.TableStatus(c.Query("status")),
	}
	if floor := c.Query("floor"); floor != "" {
		f, err := strconv.Atoi(floor)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "floor must be a number", "kind": "validation"})
			return
		}
		filter.Floor = f
	}

	tables, err := h.tables.List(filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}

// UpdateStatus patches a table's occupancy state
func (h *TableHandler) UpdateStatus(c *gin.Context) {
	var req services.TableStatusPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	table, err := h.tables.UpdateStatus(middleware.Identity(c), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table updated", "table": table})
}

type AssignWaiterRequest struct {
	WaiterID string `json:"waiter_id" binding:"required"`
}

// AssignWaiter sets the table's server (manager and above)
func (h *TableHandler) AssignWaiter(c *gin.Context) {
	var req AssignWaiterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	table, err := h.tables.AssignWaiter(middleware.Identity(c), c.Param("id"), req.WaiterID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Waiter assigned", "table": table})
}
