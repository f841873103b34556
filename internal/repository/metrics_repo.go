package repository

import (
	"Inkwell/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// DailyCount is one histogram bucket; Day is a calendar date string in
// YYYY-MM-DD form.
type DailyCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type MetricsRepo interface {
	CountUsers(ctx context.Context) (int64, error)
	CountUsersSince(ctx context.Context, since time.Time) (int64, error)
	CountPublishedPosts(ctx context.Context) (int64, error)
	CountPublishedPostsSince(ctx context.Context, since time.Time) (int64, error)
	TopLiked(ctx context.Context, n int) ([]*model.Post, error)
	TopCommented(ctx context.Context, n int) ([]*model.Post, error)
	SignupsPerDay(ctx context.Context, since time.Time) ([]DailyCount, error)
	PublishesPerDay(ctx context.Context, since time.Time) ([]DailyCount, error)
}

type MetricsRepoImpl struct {
	db *gorm.DB
}

func NewMetricsRepo(db *gorm.DB) MetricsRepo {
	return &MetricsRepoImpl{db}
}

func (s *MetricsRepoImpl) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}

func (s *MetricsRepoImpl) CountUsersSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (s *MetricsRepoImpl) CountPublishedPosts(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("status = ?", model.PostStatusPublished).
		Count(&count).Error
	return count, err
}

func (s *MetricsRepoImpl) CountPublishedPostsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("status = ? AND published_at >= ?", model.PostStatusPublished, since).
		Count(&count).Error
	return count, err
}

func (s *MetricsRepoImpl) TopLiked(ctx context.Context, n int) ([]*model.Post, error) {
	return s.topPosts(ctx, n, "likes_count DESC, id ASC")
}

func (s *MetricsRepoImpl) TopCommented(ctx context.Context, n int) ([]*model.Post, error) {
	return s.topPosts(ctx, n, "comments_count DESC, id ASC")
}

func (s *MetricsRepoImpl) topPosts(ctx context.Context, n int, order string) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Where("status = ?", model.PostStatusPublished).
		Order(order).
		Limit(n).
		Find(&posts).Error
	return posts, err
}

func (s *MetricsRepoImpl) SignupsPerDay(ctx context.Context, since time.Time) ([]DailyCount, error) {
	var buckets []DailyCount
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&buckets).Error
	return buckets, err
}

func (s *MetricsRepoImpl) PublishesPerDay(ctx context.Context, since time.Time) ([]DailyCount, error) {
	var buckets []DailyCount
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select("DATE(published_at) AS day, COUNT(*) AS count").
		Where("status = ? AND published_at >= ?", model.PostStatusPublished, since).
		Group("DATE(published_at)").
		Order("day ASC").
		Scan(&buckets).Error
	return buckets, err
}
