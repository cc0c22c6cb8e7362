package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadportal-api/internal/services"
)

// OrderHandler handles order submission HTTP requests
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary Submit a paid order
// @Description Record an order after its payment intent has succeeded
// @Tags orders
// @Accept json
// @Produce json
// @Param request body services.SubmitOrderRequest true "Order form payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders/submit [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req services.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	order, err := h.orderService.SubmitOrder(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to submit order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orderId": order.ID,
		"message": "Order submitted successfully",
	})
}
