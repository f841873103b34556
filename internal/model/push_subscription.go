package model

import (
	"time"
)

// PushSubscription is a registered web-push target. Registration is
// idempotent on the endpoint URL.
type PushSubscription struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	Endpoint  string    `gorm:"type:varchar(512);not null;uniqueIndex:idx_endpoint" json:"endpoint"`
	P256dh    string    `gorm:"type:varchar(255);not null" json:"p256dh"`
	Auth      string    `gorm:"type:varchar(255);not null" json:"auth"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PushSubscription) TableName() string {
	return "push_subscriptions"
}
