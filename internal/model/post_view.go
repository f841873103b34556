package model

import (
	"time"
)

// PostView is one recorded view event; the Views counter on posts is the
// row count, and the latest row per (user, post) rate-limits repeat
// counting.
type PostView struct {
	ID       uint64    `gorm:"primaryKey"`
	PostID   uint64    `gorm:"not null;index:idx_post_user" json:"postId"`
	UserID   uint64    `gorm:"not null;index:idx_post_user" json:"userId"`
	ViewedAt time.Time `gorm:"not null" json:"viewedAt"`
}

func (PostView) TableName() string {
	return "post_views"
}
