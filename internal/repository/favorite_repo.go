package repository

import (
	"Inkwell/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepo interface {
	// Add and Remove are idempotent; repeating either leaves the same
	// state and reports no error.
	Add(ctx context.Context, userID, postID uint64) error
	Remove(ctx context.Context, userID, postID uint64) error
	Exists(ctx context.Context, userID, postID uint64) (bool, error)
}

type FavoriteRepoImpl struct {
	db *gorm.DB
}

func NewFavoriteRepo(db *gorm.DB) FavoriteRepo {
	return &FavoriteRepoImpl{db}
}

func (s *FavoriteRepoImpl) Add(ctx context.Context, userID, postID uint64) error {
	row := model.FavoritePost{UserID: userID, PostID: postID}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

func (s *FavoriteRepoImpl) Remove(ctx context.Context, userID, postID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.FavoritePost{}).Error
}

func (s *FavoriteRepoImpl) Exists(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.FavoritePost{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}
