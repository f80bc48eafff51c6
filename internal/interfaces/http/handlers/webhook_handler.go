package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "agency-platform.backend/internal/domain/errors"
)

type PaymentCompleter interface {
	CompletePayment(ctx context.Context, paymentReference string) error
}

// WebhookHandler handles webhook endpoints
type WebhookHandler struct {
	payments PaymentCompleter
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(payments PaymentCompleter) *WebhookHandler {
	return &WebhookHandler{payments: payments}
}

// HandlePaymentWebhook handles payment confirmations from the provider
// POST /api/v1/webhooks/payments
func (h *WebhookHandler) HandlePaymentWebhook(c *gin.Context) {
	var input struct {
		EventType string `json:"eventType"`
		Reference string `json:"reference"`
		Timestamp string `json:"timestamp"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.EventType != "payment.completed" {
		// unknown events are acknowledged so the provider stops retrying
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if err := h.payments.CompletePayment(c.Request.Context(), input.Reference); err != nil {
		if err == domainerrors.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown payment reference"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process webhook"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
