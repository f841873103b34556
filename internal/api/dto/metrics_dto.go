package dto

import (
	"Inkwell/internal/repository"
	"time"
)

// TopPostDTO is the condensed shape on the dashboard leaderboards.
type TopPostDTO struct {
	ID            uint64 `json:"id"`
	Title         string `json:"title"`
	LikesCount    int    `json:"likesCount"`
	CommentsCount int    `json:"commentsCount"`
	ViewsCount    int    `json:"viewsCount"`
}

// MetricsSnapshot is the cached admin dashboard payload.
type MetricsSnapshot struct {
	TotalUsers          int64                   `json:"totalUsers"`
	NewUsersWeek        int64                   `json:"newUsersWeek"`
	NewUsersMonth       int64                   `json:"newUsersMonth"`
	TotalPublished      int64                   `json:"totalPublished"`
	NewPublishedWeek    int64                   `json:"newPublishedWeek"`
	NewPublishedMonth   int64                   `json:"newPublishedMonth"`
	ActiveSubscriptions int64                   `json:"activeSubscriptions"`
	TopLiked            []*TopPostDTO           `json:"topLiked"`
	TopCommented        []*TopPostDTO           `json:"topCommented"`
	SignupsPerDay       []repository.DailyCount `json:"signupsPerDay"`
	PublishesPerDay     []repository.DailyCount `json:"publishesPerDay"`
	GeneratedAt         time.Time               `json:"generatedAt"`
}

type MetricsResponse struct {
	Success bool             `json:"success"`
	Metrics *MetricsSnapshot `json:"metrics"`
}
