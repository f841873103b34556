package repository

import (
	"Inkwell/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PushSubscriptionRepo interface {
	// Upsert registers a push target; re-registering an endpoint
	// refreshes its keys and owner.
	Upsert(ctx context.Context, sub *model.PushSubscription) error
	GetByUser(ctx context.Context, userID uint64) ([]*model.PushSubscription, error)
	DeleteByEndpoint(ctx context.Context, endpoint string) error
}

type PushSubscriptionRepoImpl struct {
	db *gorm.DB
}

func NewPushSubscriptionRepo(db *gorm.DB) PushSubscriptionRepo {
	return &PushSubscriptionRepoImpl{db}
}

func (s *PushSubscriptionRepoImpl) Upsert(ctx context.Context, sub *model.PushSubscription) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh", "auth"}),
		}).
		Create(sub).Error
}

func (s *PushSubscriptionRepoImpl) GetByUser(ctx context.Context, userID uint64) ([]*model.PushSubscription, error) {
	var subs []*model.PushSubscription
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&subs).Error
	return subs, err
}

func (s *PushSubscriptionRepoImpl) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	return s.db.WithContext(ctx).
		Where("endpoint = ?", endpoint).
		Delete(&model.PushSubscription{}).Error
}
