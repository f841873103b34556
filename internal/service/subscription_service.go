package service

import (
	"Inkwell/internal/pkg/kafka"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
)

// SubscriptionService reacts to billing-provider lifecycle callbacks.
// The subscription itself lives with the provider; this side only turns
// the callback into an engagement event.
type SubscriptionService interface {
	Activated(ctx context.Context, customerID string) error
}

type SubscriptionServiceImpl struct {
	userRepo repository.UserRepo
	producer kafka.Producer
}

func NewSubscriptionService(userRepo repository.UserRepo, producer kafka.Producer) SubscriptionService {
	return &SubscriptionServiceImpl{userRepo: userRepo, producer: producer}
}

func (s *SubscriptionServiceImpl) Activated(ctx context.Context, customerID string) error {
	user, err := s.userRepo.GetByBillingCustomerID(ctx, customerID)
	if err != nil {
		log.ErrorContext(ctx, "resolve billing customer failed", "customer", customerID, "err", err)
		return UnExpectedError
	}
	if user == nil {
		return ErrUserNotFound
	}

	s.producer.PublishEngagement(ctx, &kafka.EngagementEvent{
		Type:      kafka.EventSubscriptionActivated,
		ActorID:   user.ID,
		ActorName: displayName(user),
	})
	return nil
}
