package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
)

type PushService interface {
	// Subscribe registers a browser push target for the caller;
	// re-registering the same endpoint rebinds it.
	Subscribe(ctx context.Context, userID uint64, req *dto.PushSubscribeRequest) error
}

type PushServiceImpl struct {
	subRepo repository.PushSubscriptionRepo
}

func NewPushService(subRepo repository.PushSubscriptionRepo) PushService {
	return &PushServiceImpl{subRepo: subRepo}
}

func (s *PushServiceImpl) Subscribe(ctx context.Context, userID uint64, req *dto.PushSubscribeRequest) error {
	sub := &model.PushSubscription{
		UserID:   userID,
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	}
	if err := s.subRepo.Upsert(ctx, sub); err != nil {
		log.ErrorContext(ctx, "register push subscription failed", "user", userID, "err", err)
		return UnExpectedError
	}
	return nil
}
