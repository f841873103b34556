package repository

import (
	"Inkwell/internal/model"
	"context"

	"gorm.io/gorm"
)

type CommentRepo interface {
	// Create appends the comment and refreshes the post's comment
	// counter in the same transaction.
	Create(ctx context.Context, comment *model.PostComment) error
	ListByPost(ctx context.Context, postID uint64, limit, offset int) ([]*model.PostComment, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db}
}

func (s *CommentRepoImpl) Create(ctx context.Context, comment *model.PostComment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		var total int64
		if err := tx.Model(&model.PostComment{}).
			Where("post_id = ?", comment.PostID).
			Count(&total).Error; err != nil {
			return err
		}

		return tx.Model(&model.Post{}).
			Where("id = ?", comment.PostID).
			Update("comments_count", total).Error
	})
}

func (s *CommentRepoImpl) ListByPost(ctx context.Context, postID uint64, limit, offset int) ([]*model.PostComment, error) {
	var comments []*model.PostComment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}
