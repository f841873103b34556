package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ViewRepo interface {
	// TrackView records a view unless the same reader viewed the post
	// within the cool-down window. It reports whether a view was
	// counted; the post's view counter is refreshed in the same
	// transaction.
	TrackView(ctx context.Context, postID, userID uint64, coolDown time.Duration, now time.Time) (bool, error)
}

type ViewRepoImpl struct {
	db *gorm.DB
}

func NewViewRepo(db *gorm.DB) ViewRepo {
	return &ViewRepoImpl{db}
}

func (s *ViewRepoImpl) TrackView(ctx context.Context, postID, userID uint64, coolDown time.Duration, now time.Time) (bool, error) {
	counted := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var latest model.PostView
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Order("viewed_at DESC, id DESC").
			First(&latest).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && now.Sub(latest.ViewedAt) < coolDown {
			return nil
		}

		view := model.PostView{PostID: postID, UserID: userID, ViewedAt: now}
		if err := tx.Create(&view).Error; err != nil {
			return err
		}
		counted = true

		var total int64
		if err := tx.Model(&model.PostView{}).
			Where("post_id = ?", postID).
			Count(&total).Error; err != nil {
			return err
		}

		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			Update("views_count", total).Error
	})
	return counted, err
}
