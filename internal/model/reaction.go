package model

import (
	"time"
)

const (
	ReactionNone    int8 = 0
	ReactionLike    int8 = 1
	ReactionDislike int8 = 2
)

// PostReaction holds at most one row per (user, post); absence means no
// reaction. The composite primary key enforces the invariant.
type PostReaction struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	PostID    uint64    `gorm:"primaryKey;index:idx_user_post_reactions_post_id" json:"postId"`
	Reaction  int8      `gorm:"not null" json:"reaction"` // 1:like, 2:dislike
	CreatedAt time.Time `json:"createdAt"`
}

func (PostReaction) TableName() string {
	return "user_post_reactions"
}
