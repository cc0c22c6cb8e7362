package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadportal-api/internal/services"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// @Summary Create a payment intent
// @Description Create a payment intent for a lead order. Amount is in the smallest currency unit.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body services.CreateIntentRequest true "Amount, currency, and order data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payments/create-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req services.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	intent, err := h.paymentService.CreatePaymentIntent(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create payment intent")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"clientSecret":    intent.ClientSecret,
		"paymentIntentId": intent.ID,
	})
}
