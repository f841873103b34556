package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubSubscriptionService struct {
	activated []string
}

func (s *stubSubscriptionService) Activated(_ context.Context, customerID string) error {
	s.activated = append(s.activated, customerID)
	return nil
}

func postWebhook(engine *gin.Engine, key, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/billing/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-Webhook-Key", key)
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestBillingWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubSubscriptionService{}
	h := NewBillingHandler(svc, "hook-secret")

	engine := gin.New()
	engine.POST("/api/billing/webhook", h.Webhook)

	// A wrong or missing key is rejected before the body is touched.
	w := postWebhook(engine, "wrong", `{"type":"subscription.activated","customerId":"cus_1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, svc.activated)

	// A valid activation reaches the service.
	w = postWebhook(engine, "hook-secret", `{"type":"subscription.activated","customerId":"cus_1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"cus_1"}, svc.activated)

	// Unhandled event types are acknowledged so the provider stops
	// retrying.
	w = postWebhook(engine, "hook-secret", `{"type":"invoice.paid","customerId":"cus_1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, svc.activated, 1)

	// A malformed payload is a 400.
	w = postWebhook(engine, "hook-secret", `{"type":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
