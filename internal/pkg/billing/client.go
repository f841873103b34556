package billing

import (
	"Inkwell/internal/api/config"
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client is the payment provider's REST API surface we depend on.
// Subscription lifecycle itself (checkout, webhooks) lives with the
// provider.
type Client interface {
	HasActiveSubscription(ctx context.Context, customerID string) (bool, error)
	CountActiveSubscriptions(ctx context.Context) (int64, error)
}

type clientImpl struct {
	http *resty.Client
}

func NewClient(cfg config.BillingConfig) Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Accept", "application/json")
	return &clientImpl{http: c}
}

type subscriptionStatus struct {
	Active bool `json:"active"`
}

type subscriptionCount struct {
	Count int64 `json:"count"`
}

func (s *clientImpl) HasActiveSubscription(ctx context.Context, customerID string) (bool, error) {
	if customerID == "" {
		return false, nil
	}

	var status subscriptionStatus
	resp, err := s.http.R().
		SetContext(ctx).
		SetPathParam("customer_id", customerID).
		SetResult(&status).
		Get("/v1/customers/{customer_id}/subscription")
	if err != nil {
		return false, errors.Wrap(err, "billing: subscription lookup failed")
	}
	if resp.StatusCode() == 404 {
		return false, nil
	}
	if resp.IsError() {
		return false, errors.Errorf("billing: subscription lookup returned %d", resp.StatusCode())
	}
	return status.Active, nil
}

func (s *clientImpl) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	var count subscriptionCount
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("status", "active").
		SetResult(&count).
		Get("/v1/subscriptions/count")
	if err != nil {
		return 0, errors.Wrap(err, "billing: subscription count failed")
	}
	if resp.IsError() {
		return 0, fmt.Errorf("billing: subscription count returned %d", resp.StatusCode())
	}
	return count.Count, nil
}
