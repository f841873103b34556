package notify

import (
	"Inkwell/internal/api/config"
	"Inkwell/internal/model"
	"errors"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// ErrSubscriptionGone reports that the browser dropped the push
// subscription; callers should delete the stored endpoint.
var ErrSubscriptionGone = errors.New("push subscription gone")

// PushSender delivers web-push messages to registered subscriptions.
type PushSender interface {
	Send(sub *model.PushSubscription, payload []byte) error
}

type pushSenderImpl struct {
	cfg config.NotifyConfig
}

func NewPushSender(cfg config.NotifyConfig) PushSender {
	return &pushSenderImpl{cfg: cfg}
}

func (s *pushSenderImpl) Send(sub *model.PushSubscription, payload []byte) error {
	resp, err := webpush.SendNotification(payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		Subscriber:      s.cfg.VAPIDSubscriber,
		VAPIDPublicKey:  s.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: s.cfg.VAPIDPrivateKey,
		TTL:             60,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// 404/410 mean the browser dropped the subscription.
	if resp.StatusCode == 404 || resp.StatusCode == 410 {
		return ErrSubscriptionGone
	}
	return nil
}
