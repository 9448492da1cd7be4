package handlers

import (
	"net/http"

	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/repository"
	"restaurant-pos-api/services"
	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create submits items for an occupied table; appends to the table's
// active order when one exists
func (h *OrderHandler) Create(c *gin.Context) {
	var req services.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.orders.Create(middleware.Identity(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order submitted",
		"order":   order,
		"total":   order.Total(),
	})
}

// Get returns one order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orders.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "total": order.Total()})
}

// List returns orders filtered by table, waiter, or status
func (h *OrderHandler) List(c *gin.Context) {
	filter := repository.OrderFilter{
		TableID:  c.Query("table_id"),
		WaiterID: c.Query("waiter_id"),
		Status:   models.OrderStatus(c.Query("status")),
	}
	orders, err := h.orders.List(filter)
	if err != nil {
		fail(c, err)
		return
	}

	// dashboard summary, same shape the kitchen display reads
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}
	c.JSON(http.StatusOK, gin.H{
		"count":         len(orders),
		"order_summary": summary,
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateStatus advances an order through the workflow
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.orders.AdvanceStatus(middleware.Identity(c), c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Order status updated",
		"order_id":       order.ID,
		"current_status": order.Status,
	})
}

// AddItem appends one item to an order
func (h *OrderHandler) AddItem(c *gin.Context) {
	var req services.OrderItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.orders.AddItem(middleware.Identity(c), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item added", "order": order, "total": order.Total()})
}

// UpdateItem replaces an item on an order in place
func (h *OrderHandler) UpdateItem(c *gin.Context) {
	var req services.OrderItemPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.orders.UpdateItem(middleware.Identity(c), c.Param("id"), c.Param("itemId"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item updated", "order": order, "total": order.Total()})
}

// StateMachineInfo publishes the order workflow for docs and clients
func (h *OrderHandler) StateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"transitions": statemachine.AllTransitions(),
		"statuses": []models.OrderStatus{
			models.OrderNew, models.OrderInProgress, models.OrderDone,
			models.OrderDelivered, models.OrderPaid, models.OrderCancelled,
		},
	})
}
