package handlers

import (
	"net/http"

	"restaurant-pos-api/middleware"
	"restaurant-pos-api/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Settle records a payment against an order and releases the table when
// nothing unsettled remains on it
func (h *PaymentHandler) Settle(c *gin.Context) {
	var req services.SettleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	payment, err := h.payments.Settle(middleware.Identity(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	middleware.ObserveSettlement(string(payment.Method))
	c.JSON(http.StatusCreated, gin.H{"message": "Payment recorded", "payment": payment})
}

// ForOrder returns the payment that settled an order
func (h *PaymentHandler) ForOrder(c *gin.Context) {
	payment, err := h.payments.ForOrder(c.Param("orderId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment})
}
