package model

import (
	"time"
)

// FavoritePost presence means favorited; there is no denormalized counter
// for favorites.
type FavoritePost struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	PostID    uint64    `gorm:"primaryKey;index:idx_favorite_posts_post_id" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (FavoritePost) TableName() string {
	return "favorite_posts"
}
