package kafka

import (
	"Inkwell/internal/pkg/notify"
	"Inkwell/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// NotificationsHandler consumes engagement events and fans them out to
// email and web-push. Delivery failures stay inside the handler.
type NotificationsHandler struct {
	userRepo repository.UserRepo
	subRepo  repository.PushSubscriptionRepo
	gateway  notify.Gateway
	push     notify.PushSender
}

func NewNotificationsHandler(
	userRepo repository.UserRepo,
	subRepo repository.PushSubscriptionRepo,
	gateway notify.Gateway,
	push notify.PushSender,
) *NotificationsHandler {
	return &NotificationsHandler{
		userRepo: userRepo,
		subRepo:  subRepo,
		gateway:  gateway,
		push:     push,
	}
}

func (s *NotificationsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer setup")
	return nil
}

func (s *NotificationsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer cleanup")
	return nil
}

func (s *NotificationsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("engagement topic consume claim")
	if err := pullMessageBatch(session, claim, s.logic); err != nil {
		log.Error("engagement batch error", "err", err)
		return err
	}
	return nil
}

func (s *NotificationsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event EngagementEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.ErrorContext(ctx, "unmarshal engagement event failed", "err", err)
		return nil // poison message, do not block the partition
	}

	switch event.Type {
	case EventCommentCreated:
		return s.notifyAdmins(ctx, &event,
			fmt.Sprintf("New comment on %q", event.PostTitle),
			fmt.Sprintf("%s commented: %s", event.ActorName, event.Comment),
		)
	case EventSubscriptionActivated:
		return s.notifyAdmins(ctx, &event,
			"New subscriber",
			fmt.Sprintf("%s activated a subscription", event.ActorName),
		)
	default:
		return nil
	}
}

func (s *NotificationsHandler) notifyAdmins(ctx context.Context, event *EngagementEvent, subject, body string) error {
	admins, err := s.userRepo.GetAdmins(ctx)
	if err != nil {
		return err
	}

	payload, _ := json.Marshal(map[string]any{
		"title":  subject,
		"body":   body,
		"postId": event.PostID,
	})

	for _, admin := range admins {
		if admin.ID == event.ActorID {
			continue
		}

		if admin.Email != "" {
			if err := s.gateway.SendEmail(ctx, admin.Email, subject, body); err != nil {
				log.WarnContext(ctx, "email delivery failed", "user", admin.ID, "err", err)
			}
		}
		if admin.Phone != "" {
			if err := s.gateway.SendSMS(ctx, admin.Phone, subject+": "+body); err != nil {
				log.WarnContext(ctx, "sms delivery failed", "user", admin.ID, "err", err)
			}
		}

		subs, err := s.subRepo.GetByUser(ctx, admin.ID)
		if err != nil {
			log.WarnContext(ctx, "load push subscriptions failed", "user", admin.ID, "err", err)
			continue
		}
		for _, sub := range subs {
			err := s.push.Send(sub, payload)
			switch {
			case errors.Is(err, notify.ErrSubscriptionGone):
				// The browser dropped the endpoint; stop pushing to it.
				if err := s.subRepo.DeleteByEndpoint(ctx, sub.Endpoint); err != nil {
					log.WarnContext(ctx, "prune push subscription failed", "endpoint", sub.Endpoint, "err", err)
				}
			case err != nil:
				log.WarnContext(ctx, "push delivery failed", "endpoint", sub.Endpoint, "err", err)
			}
		}
	}
	return nil
}
