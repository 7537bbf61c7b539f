package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"productpulse-backend-go/internal/core"
	"productpulse-backend-go/internal/models"
)

// BillingHandler handles payment-intent creation and payment logging.
type BillingHandler struct {
	billingService core.BillingService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(bs core.BillingService) *BillingHandler {
	return &BillingHandler{billingService: bs}
}

// CreatePaymentIntent handles POST /billing/create-payment-intent.
func (h *BillingHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	secret, err := h.billingService.CreatePaymentIntent(c.Request.Context(), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid amount", Details: err.Error()})
		case errors.Is(err, core.ErrGateway):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Payment provider error"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		}
		return
	}
	c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: secret})
}

// RecordPayment handles POST /payments — append the completed
// transaction and flip the caller's subscription.
func (h *BillingHandler) RecordPayment(c *gin.Context) {
	var req models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if err := h.billingService.RecordPayment(c.Request.Context(), c.GetString("userEmail"), req); err != nil {
		if errors.Is(err, core.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid amount", Details: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record payment"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "payment recorded"})
}
