package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/kafka"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BillingHandler receives the payment provider's webhook callbacks.
// Authenticity is checked against a shared secret header; the provider
// key set is configured alongside the billing API credentials.
type BillingHandler struct {
	subscriptionService service.SubscriptionService
	webhookSecret       string
}

func NewBillingHandler(subscriptionService service.SubscriptionService, webhookSecret string) *BillingHandler {
	return &BillingHandler{
		subscriptionService: subscriptionService,
		webhookSecret:       webhookSecret,
	}
}

func (s *BillingHandler) Webhook(c *gin.Context) {
	if c.GetHeader("X-Webhook-Key") != s.webhookSecret {
		response.Fail(c, http.StatusUnauthorized, "invalid webhook key")
		return
	}

	var req dto.BillingWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	switch req.Type {
	case kafka.EventSubscriptionActivated:
		if err := s.subscriptionService.Activated(c.Request.Context(), req.CustomerID); err != nil {
			response.Error(c, err)
			return
		}
	default:
		// Event types we do not handle are acknowledged so the
		// provider stops retrying them.
	}
	response.OK(c, dto.SimpleResponse{Success: true})
}
