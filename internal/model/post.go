package model

import (
	"time"
)

const (
	PostStatusDraft     int8 = 0
	PostStatusPublished int8 = 1
	PostStatusArchived  int8 = 2
)

type Post struct {
	ID          uint64     `gorm:"primaryKey"`
	Image       string     `gorm:"type:varchar(512)" json:"image"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Preview     string     `gorm:"type:varchar(600);not null" json:"preview"`
	ReadingTime *int       `json:"readingTime"` // minutes, nil means unknown
	IsPremium   bool       `gorm:"type:tinyint(1);not null;default:0" json:"isPremium"`
	Status      int8       `gorm:"not null;default:0;index:idx_status" json:"status"` // 0:draft, 1:published, 2:archived
	PublishedAt *time.Time `json:"publishedAt"`

	// Denormalized counters, recomputed transactionally from the
	// reaction/comment/view tables.
	LikesCount    int `gorm:"not null;default:0" json:"likesCount"`
	DislikesCount int `gorm:"not null;default:0" json:"dislikesCount"`
	CommentsCount int `gorm:"not null;default:0" json:"commentsCount"`
	ViewsCount    int `gorm:"not null;default:0" json:"viewsCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}
