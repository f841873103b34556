package notify

import (
	"Inkwell/internal/api/config"
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Gateway is the mail/SMS delivery provider. Both channels go through the
// same HTTP gateway; delivery is fire-and-forget from the caller's view.
type Gateway interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	SendSMS(ctx context.Context, phone, body string) error
}

type gatewayImpl struct {
	http *resty.Client
}

func NewGateway(cfg config.NotifyConfig) Gateway {
	c := resty.New().
		SetBaseURL(cfg.GatewayURL).
		SetAuthToken(cfg.GatewayKey)
	return &gatewayImpl{http: c}
}

func (s *gatewayImpl) SendEmail(ctx context.Context, to, subject, body string) error {
	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"to": to, "subject": subject, "body": body}).
		Post("/v1/email")
	if err != nil {
		return errors.Wrap(err, "notify: email send failed")
	}
	if resp.IsError() {
		return errors.Errorf("notify: email gateway returned %d", resp.StatusCode())
	}
	return nil
}

func (s *gatewayImpl) SendSMS(ctx context.Context, phone, body string) error {
	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"phone": phone, "body": body}).
		Post("/v1/sms")
	if err != nil {
		return errors.Wrap(err, "notify: sms send failed")
	}
	if resp.IsError() {
		return errors.Errorf("notify: sms gateway returned %d", resp.StatusCode())
	}
	return nil
}
